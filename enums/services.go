package enums

type ServiceType string

const (
	ServiceTypeHouseCleaning ServiceType = "house_cleaning"
	ServiceTypeCarWashing    ServiceType = "car_washing"
	ServiceTypeLandscaping   ServiceType = "landscaping"
)
