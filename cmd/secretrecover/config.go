package main

import (
	"github.com/vitalvas/secretrecover/xlogger"
)

const envPrefix = "SECRETRECOVER"

type Config struct {
	Logger xlogger.Config `yaml:"logger" json:"logger"`

	// Output is the result format: text or json.
	Output string `yaml:"output" json:"output" default:"text"`

	// Verify checks that shares beyond the threshold agree with the recovered polynomial.
	Verify bool `yaml:"verify" json:"verify"`

	// Workers bounds how many files are processed at once.
	Workers int `yaml:"workers" json:"workers" default:"4"`
}
