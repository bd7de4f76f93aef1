package consts

const (
	MimePrefixImage = "image"
	MimePDF         = "application/pdf"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	// VaccineStatusPending 进行中（仍有剂次或加强针待接种）
	VaccineStatusPending = "pending"
	// VaccineStatusCompleted 已完成（基础针次打完且无周期性加强针）
	VaccineStatusCompleted = "completed"
)

const (
	// RabiesPostExposureName 狂犬病暴露后处置方案的通用名
	RabiesPostExposureName = "Rabies Vaccine (Post-exposure)"
	// RabiesUnimmunizedBrand 未免疫过的肌注程序
	RabiesUnimmunizedBrand = "Unimmunized Schedule (IM)"
	// RabiesImmunizedBrand 既往已免疫的简化程序
	RabiesImmunizedBrand = "Previously Immunized Schedule"
)
