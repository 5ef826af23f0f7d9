package strarray_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestStrarray(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Strarray Suite")
}
