package enums

import "fmt"

// DeviceType records which client surface placed an order group.
type DeviceType string

const (
	DeviceTypeMobile DeviceType = "MOBILE"
	DeviceTypeWeb    DeviceType = "WEB"
)

var validDeviceTypes = []DeviceType{DeviceTypeMobile, DeviceTypeWeb}

func (d DeviceType) String() string {
	return string(d)
}

func (d DeviceType) IsValid() bool {
	for _, candidate := range validDeviceTypes {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDeviceType converts raw input into a DeviceType.
func ParseDeviceType(value string) (DeviceType, error) {
	for _, candidate := range validDeviceTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid device type %q", value)
}
