package config

import (
	"fmt"
	"io/ioutil"

	"github.com/Cloud-Foundations/golib/pkg/log"
	"github.com/Cloud-Foundations/route53api/pkg/route53"

	"gopkg.in/yaml.v2"
)

func newClient(config Config, logger log.DebugLogger) (
	*route53.Client, error) {
	return route53.New(route53.Params{
		AccessKeyId:     config.AccessKeyId,
		SecretAccessKey: config.SecretAccessKey,
		ApiVersion:      config.ApiVersion,
		Endpoint:        config.Endpoint,
		Logger:          logger,
	})
}

func newClientFromFile(filename string, logger log.DebugLogger) (
	*route53.Client, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var config Config
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing: %s: %s", filename, err)
	}
	return newClient(config, logger)
}
