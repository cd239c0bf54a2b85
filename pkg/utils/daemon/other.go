//go:build !darwin && !linux

package daemon

var servicePath = ""

func render(Options) string { return "" }

func start() error { return ErrUnsupported }

func stop() error { return ErrUnsupported }
