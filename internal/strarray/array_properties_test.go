package strarray_test

import (
	"fmt"
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/strarray/internal/strarray"
)

var _ = Describe("Array", func() {
	var arr *strarray.Array

	newArray := func(capacity int) *strarray.Array {
		a, err := strarray.New(capacity, strarray.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
		Expect(err).NotTo(HaveOccurred())
		return a
	}

	BeforeEach(func() {
		arr = newArray(1)
	})

	It("keeps 0 <= count <= capacity across mixed operations", func() {
		for i := 0; i < 40; i++ {
			switch i % 4 {
			case 0, 1:
				arr.Append(fmt.Sprintf("v%d", i%7))
			case 2:
				arr.Insert(fmt.Sprintf("v%d", i%5), arr.Len()/2)
			case 3:
				_ = arr.Remove(fmt.Sprintf("v%d", i%3))
			}
			Expect(arr.Len()).To(BeNumerically(">=", 0))
			Expect(arr.Len()).To(BeNumerically("<=", arr.Cap()))
		}
	})

	It("doubles a full array and keeps its elements in order", func() {
		arr = newArray(3)
		arr.Append("a")
		arr.Append("b")
		arr.Append("c")
		Expect(arr.Cap()).To(Equal(3))

		arr.Append("d")
		Expect(arr.Cap()).To(Equal(6))
		Expect(arr.Elements()).To(Equal([]string{"a", "b", "c", "d"}))
	})

	DescribeTable("insert then read round-trips and shifts the tail",
		func(index int) {
			arr = newArray(2)
			for _, v := range []string{"a", "b", "c"} {
				arr.Append(v)
			}
			before := arr.Elements()

			arr.Insert("x", index)

			got, err := arr.Read(index)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal("x"))
			Expect(arr.Elements()[index+1:]).To(Equal(before[index:]))
			Expect(arr.Elements()[:index]).To(Equal(before[:index]))
		},
		Entry("front", 0),
		Entry("middle", 1),
		Entry("end", 3),
	)

	It("appends exactly like an insert at the end", func() {
		other := newArray(1)
		for _, v := range []string{"p", "q", "r"} {
			arr.Append(v)
			other.Insert(v, other.Len())
		}
		Expect(arr.Elements()).To(Equal(other.Elements()))
		Expect(arr.Cap()).To(Equal(other.Cap()))
	})

	It("removes only the first match", func() {
		arr.Append("a")
		arr.Append("b")
		arr.Append("a")

		Expect(arr.Remove("a")).To(Succeed())
		Expect(arr.String()).To(Equal("[b,a]"))
		Expect(arr.Read(1)).To(Equal("a"))
	})

	It("reports a missing value without mutating", func() {
		arr.Append("a")
		capBefore := arr.Cap()

		Expect(arr.Remove("x")).To(MatchError(strarray.ErrValueNotFound))
		Expect(arr.Elements()).To(Equal([]string{"a"}))
		Expect(arr.Cap()).To(Equal(capBefore))
	})

	It("fails a read at count without mutating", func() {
		arr.Append("a")
		_, err := arr.Read(arr.Len())
		Expect(err).To(MatchError(strarray.ErrIndexOutOfRange))
		Expect(strarray.IsFatal(err)).To(BeFalse())
		Expect(arr.Len()).To(Equal(1))
	})

	It("panics with a fatal index error on insert past the end", func() {
		Expect(func() { arr.Insert("x", 1) }).To(PanicWith(MatchError(strarray.ErrIndexOutOfRange)))
		Expect(arr.Len()).To(Equal(0))
	})

	It("never shrinks after removals", func() {
		for i := 0; i < 5; i++ {
			arr.Append(fmt.Sprint(i))
		}
		Expect(arr.Cap()).To(Equal(8))
		for i := 0; i < 5; i++ {
			Expect(arr.Remove(fmt.Sprint(i))).To(Succeed())
		}
		Expect(arr.Len()).To(Equal(0))
		Expect(arr.Cap()).To(Equal(8))
	})
})
