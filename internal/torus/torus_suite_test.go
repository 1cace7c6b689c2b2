package torus_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTorus(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Torus Suite")
}
