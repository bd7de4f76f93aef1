package consts

const (
	// PincodeCoordKey 邮编坐标缓存，键后接六位邮编
	PincodeCoordKey = "finder:pincode:coord:"
	// MapsTokenKey Mappls OAuth token 缓存
	MapsTokenKey = "maps:oauth:token"
)

const (
	// SeedLock 推荐种子创建锁，键后接用户ID
	SeedLock = "vaccine:seed:lock:"
)
