//go:build !debug

package config

const debugContext = false
