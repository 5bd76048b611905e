package model

// Setting is a generic key/value configuration row.
type Setting struct {
	Key   string
	Value string
}
