//go:build mage

// Package main provides build targets for shoplist using Mage.
//
// Usage:
//
//	mage build        Compile the shoplist binary to bin/
//	mage install      Install shoplist to GOPATH/bin
//	mage clean        Remove build artifacts
//	mage test:all     Run every test
//	mage test:unit    Run tests without the race detector or -v noise
//	mage test:race    Run tests with the race detector
//	mage test:cover   Write coverage.out and print per-function coverage
//	mage lint         Run golangci-lint
//	mage stats        Print Go lines of code per package group
package main

const (
	binGo      = "go"
	binaryName = "shoplist"
	binaryDir  = "bin"
	cmdDir     = "./cmd/shoplist"
	modulePath = "github.com/Redwards2/MeijerShoppingList"
)
