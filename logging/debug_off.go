//go:build !debug

package logging

const debug = false
