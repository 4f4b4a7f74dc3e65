package constants

const (
	AppName = "complaintdesk"

	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "COMPLAINTDESK"
)
