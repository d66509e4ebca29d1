package config

import (
	"io/ioutil"
	"time"

	yaml "gopkg.in/yaml.v3"
)

type Config struct {
	Addr        string
	Agent       string
	Renderer    string
	RenderToken string
	Phase       string
	RubricFile  string
	Concurrency int

	FetchTimeoutSeconds  int
	RenderTimeoutSeconds int
	LookupTimeoutSeconds int
}

func Default() *Config {
	return &Config{
		Addr:                 ":3000",
		Agent:                "webscore/1.0",
		Concurrency:          8,
		FetchTimeoutSeconds:  10,
		RenderTimeoutSeconds: 15,
		LookupTimeoutSeconds: 5,
	}
}

func Load(yamlBytes []byte) (conf *Config, err error) {
	conf = Default()
	errUnmarshal := yaml.Unmarshal(yamlBytes, conf)
	if errUnmarshal != nil {
		err = errUnmarshal
		return
	}
	return
}

func Get(filename string) (conf *Config, err error) {
	yamlBytes, errRead := ioutil.ReadFile(filename)
	if errRead != nil {
		err = errRead
		return
	}
	return Load(yamlBytes)
}

func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

func (c *Config) RenderTimeout() time.Duration {
	return time.Duration(c.RenderTimeoutSeconds) * time.Second
}

func (c *Config) LookupTimeout() time.Duration {
	return time.Duration(c.LookupTimeoutSeconds) * time.Second
}
