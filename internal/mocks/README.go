// Package mocks provide gomock doubles for the iterkit interfaces.
// The primary goal for this pkg is to test that consumers pull no more than they must,
// which a slice backed iterator can not tell.
package mocks
