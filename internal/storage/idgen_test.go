package storage

import (
	"regexp"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("IDGenerator", func() {
	ginkgo.It("returns the decimal millisecond timestamp", func() {
		fixed := time.UnixMilli(1700000000000)
		gen := &IDGenerator{now: func() time.Time { return fixed }}

		gomega.Expect(gen.Generate()).To(gomega.Equal("1700000000000"))
	})

	ginkgo.It("disambiguates calls within the same millisecond with a counter suffix", func() {
		fixed := time.UnixMilli(1700000000000)
		gen := &IDGenerator{now: func() time.Time { return fixed }}

		gomega.Expect(gen.Generate()).To(gomega.Equal("1700000000000"))
		gomega.Expect(gen.Generate()).To(gomega.Equal("1700000000000-1"))
		gomega.Expect(gen.Generate()).To(gomega.Equal("1700000000000-2"))
	})

	ginkgo.It("resumes plain ids once the clock advances", func() {
		ms := int64(1700000000000)
		gen := &IDGenerator{now: func() time.Time { return time.UnixMilli(ms) }}

		gomega.Expect(gen.Generate()).To(gomega.Equal("1700000000000"))
		gomega.Expect(gen.Generate()).To(gomega.Equal("1700000000000-1"))
		ms++
		gomega.Expect(gen.Generate()).To(gomega.Equal("1700000000001"))
	})

	ginkgo.It("never hands out duplicates under rapid calls", func() {
		gen := NewIDGenerator()
		seen := map[string]bool{}
		pattern := regexp.MustCompile(`^\d+(-\d+)?$`)

		for i := 0; i < 1000; i++ {
			id := gen.Generate()
			gomega.Expect(pattern.MatchString(id)).To(gomega.BeTrue())
			gomega.Expect(seen[id]).To(gomega.BeFalse(), "duplicate id %s", id)
			seen[id] = true
		}
	})
})
