package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Products() ProductRepository
	RobuxItems() RobuxItemRepository
	Settings() SettingRepository
	Promos() PromoRepository
	Orders() OrderRepository
}
