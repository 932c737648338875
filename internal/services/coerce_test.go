package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skuledger/skuledger/internal/services"
)

var _ = Describe("Coercion", func() {
	DescribeTable("ParseQuantity",
		func(raw string, want int64) {
			Expect(services.ParseQuantity(raw)).To(Equal(want))
		},
		Entry("plain", "42", int64(42)),
		Entry("thousands separator", "1,234", int64(1234)),
		Entry("surrounding whitespace", "  7 ", int64(7)),
		Entry("fraction truncated", "3.9", int64(3)),
		Entry("empty", "", int64(0)),
		Entry("garbage", "abc", int64(0)),
		Entry("negative", "-5", int64(0)),
		Entry("largest int64", "9223372036854775807", int64(9223372036854775807)),
		Entry("fraction under the int64 limit", "9223372036854775807.9", int64(9223372036854775807)),
		Entry("one past int64", "9223372036854775808", int64(0)),
		Entry("max uint64", "18446744073709551615", int64(0)),
		Entry("twenty digits", "99,999,999,999,999,999,999", int64(0)),
		Entry("huge exponent", "1e30", int64(0)),
	)

	DescribeTable("ParseCost",
		func(raw string, want float64) {
			Expect(services.ParseCost(raw)).To(BeNumerically("~", want, 1e-9))
		},
		Entry("plain", "2.50", 2.5),
		Entry("dollar", "$1,299.99", 1299.99),
		Entry("euro", "€ 3,10", 310.0),
		Entry("pound", "£0.99", 0.99),
		Entry("empty", "", 0.0),
		Entry("garbage", "n/a", 0.0),
		Entry("negative", "-$4", 0.0),
		Entry("beyond float64", "1e400", 0.0),
	)

	DescribeTable("PercentChange",
		func(change, previous int64, want string) {
			Expect(services.PercentChange(change, previous)).To(Equal(want))
		},
		Entry("increase", int64(5), int64(10), "50.00%"),
		Entry("full decrease", int64(-5), int64(5), "-100.00%"),
		Entry("repeating fraction", int64(1), int64(3), "33.33%"),
		Entry("previous zero", int64(10), int64(0), "N/A"),
	)
})
