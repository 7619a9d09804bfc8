package overview

import (
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("GermanHolidaysNRW", func() {
	ginkgo.It("contains the fixed holidays", func() {
		holidays := GermanHolidaysNRW(2024)

		gomega.Expect(holidays).To(gomega.HaveKeyWithValue("2024-01-01", "Neujahr"))
		gomega.Expect(holidays).To(gomega.HaveKeyWithValue("2024-05-01", "Tag der Arbeit"))
		gomega.Expect(holidays).To(gomega.HaveKeyWithValue("2024-10-03", "Tag der Deutschen Einheit"))
		gomega.Expect(holidays).To(gomega.HaveKeyWithValue("2024-11-01", "Allerheiligen"))
		gomega.Expect(holidays).To(gomega.HaveKeyWithValue("2024-12-25", "1. Weihnachtstag"))
		gomega.Expect(holidays).To(gomega.HaveKeyWithValue("2024-12-26", "2. Weihnachtstag"))
	})

	ginkgo.It("derives the movable feasts from Easter", func() {
		// Easter Sunday 2024 was March 31.
		holidays := GermanHolidaysNRW(2024)

		gomega.Expect(holidays).To(gomega.HaveKeyWithValue("2024-03-29", "Karfreitag"))
		gomega.Expect(holidays).To(gomega.HaveKeyWithValue("2024-04-01", "Ostermontag"))
		gomega.Expect(holidays).To(gomega.HaveKeyWithValue("2024-05-09", "Christi Himmelfahrt"))
		gomega.Expect(holidays).To(gomega.HaveKeyWithValue("2024-05-20", "Pfingstmontag"))
		gomega.Expect(holidays).To(gomega.HaveKeyWithValue("2024-05-30", "Fronleichnam"))
	})

	ginkgo.It("computes Easter for surrounding years", func() {
		gomega.Expect(easterSunday(2023).Format("2006-01-02")).To(gomega.Equal("2023-04-09"))
		gomega.Expect(easterSunday(2025).Format("2006-01-02")).To(gomega.Equal("2025-04-20"))
	})

	ginkgo.It("always yields eleven holidays", func() {
		for year := 2020; year <= 2030; year++ {
			gomega.Expect(GermanHolidaysNRW(year)).To(gomega.HaveLen(11))
		}
	})

	ginkgo.It("is usable as the grid builder's holiday set", func() {
		holidays := GermanHolidaysNRW(2024)
		gomega.Expect(holidays.Contains(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))).To(gomega.BeTrue())
		gomega.Expect(holidays.Contains(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))).To(gomega.BeFalse())
	})
})
