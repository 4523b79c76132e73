/*
Package config creates a Route 53 client from configuration data.
*/
package config

import (
	"github.com/Cloud-Foundations/golib/pkg/log"
	"github.com/Cloud-Foundations/route53api/pkg/route53"
)

type Config struct {
	AccessKeyId     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	ApiVersion      string `yaml:"api_version"` // Default: 2013-04-01.
	Endpoint        string `yaml:"endpoint"`    // For testing only.
}

// New will create a Client from configuration data.
// The logger is used for logging messages.
func New(config Config, logger log.DebugLogger) (*route53.Client, error) {
	return newClient(config, logger)
}

// NewFromFile will read YAML configuration data from the specified file and
// create a Client from it.
func NewFromFile(filename string, logger log.DebugLogger) (
	*route53.Client, error) {
	return newClientFromFile(filename, logger)
}
