package cmd

var (
	DefaultLogFile  = "setupcheck.log"
	DefaultLogLevel = "info"
)
