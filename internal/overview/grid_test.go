package overview

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/urlaubsplaner/urlaubsplaner/internal/storage"
	"github.com/urlaubsplaner/urlaubsplaner/internal/team"
	"github.com/urlaubsplaner/urlaubsplaner/internal/user"
	"github.com/urlaubsplaner/urlaubsplaner/internal/vacation"
)

func TestOverview(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Overview Module Suite")
}

var _ = ginkgo.Describe("Builder", func() {
	var (
		store     *storage.Store
		teams     *team.Service
		users     *user.Service
		vacations *vacation.Service
		builder   *Builder
	)

	ginkgo.BeforeEach(func() {
		dir := ginkgo.GinkgoT().TempDir()
		var err error
		store, err = storage.Open(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		teams = team.NewService(store)
		users = user.NewService(store)
		vacations = vacation.NewService(store)
		builder = NewBuilder(teams, users, vacations)
		// Pin "today" outside every year under test; individual specs
		// move it when they need the marker.
		builder.now = func() time.Time {
			return time.Date(1999, time.July, 1, 10, 0, 0, 0, time.UTC)
		}
	})

	addTeam := func(id, name string, department string) {
		t := team.Team{ID: id, Name: name, Members: 4}
		if department != "" {
			t.Department = &department
		}
		_, err := teams.Create(t)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	}

	ginkgo.Describe("grid shape", func() {
		ginkgo.It("has 366 day columns plus a label column in a leap year", func() {
			addTeam("t1", "Kolonne 1", "")
			grid := builder.Build(Params{Year: 2024})

			gomega.Expect(grid.Columns()).To(gomega.Equal(367))
			gomega.Expect(grid.Rows[0].Cells).To(gomega.HaveLen(366))
		})

		ginkgo.It("has 365 day columns in a common year", func() {
			gomega.Expect(DaysInYear(2023)).To(gomega.Equal(365))
			gomega.Expect(DaysInYear(2025)).To(gomega.Equal(365))
			gomega.Expect(DaysInYear(2100)).To(gomega.Equal(365))
			gomega.Expect(DaysInYear(2000)).To(gomega.Equal(366))
		})

		ginkgo.It("builds a zero-row grid without teams", func() {
			grid := builder.Build(Params{Year: 2024})
			gomega.Expect(grid.Rows).To(gomega.BeEmpty())
			gomega.Expect(grid.Columns()).To(gomega.Equal(367))
		})

		ginkgo.It("accepts far-away years and just renders no overlays", func() {
			addTeam("t1", "Kolonne 1", "")
			grid := builder.Build(Params{Year: 1900})
			gomega.Expect(grid.Columns()).To(gomega.Equal(366))
			gomega.Expect(grid.TodayColumn).To(gomega.Equal(-1))
		})
	})

	ginkgo.Describe("month ruler", func() {
		ginkgo.It("labels only the first day of each month", func() {
			addTeam("t1", "Kolonne 1", "")
			grid := builder.Build(Params{Year: 2024})

			gomega.Expect(grid.Headers[0]).To(gomega.Equal(""))
			gomega.Expect(grid.Headers[1]).To(gomega.Equal("Jan"))
			gomega.Expect(grid.Headers[2]).To(gomega.Equal(""))
			// 2024-02-01 is day 32.
			gomega.Expect(grid.Headers[32]).To(gomega.Equal("Feb"))
			gomega.Expect(grid.Headers[33]).To(gomega.Equal(""))
		})
	})

	ginkgo.Describe("day classification", func() {
		ginkgo.It("marks Saturdays and Sundays as weekend", func() {
			addTeam("t1", "Kolonne 1", "")
			grid := builder.Build(Params{Year: 2024})
			cells := grid.Rows[0].Cells

			// 2024-01-06 Saturday, 2024-01-07 Sunday, 2024-01-08 Monday.
			gomega.Expect(cells[5].Kind).To(gomega.Equal(DayWeekend))
			gomega.Expect(cells[6].Kind).To(gomega.Equal(DayWeekend))
			gomega.Expect(cells[7].Kind).To(gomega.Equal(DayRegular))
		})

		ginkgo.It("marks injected holidays on weekdays", func() {
			addTeam("t1", "Kolonne 1", "")
			grid := builder.Build(Params{
				Year:     2024,
				Holidays: HolidaySet{"2024-05-01": "Tag der Arbeit"},
			})

			// 2024-05-01 is a Wednesday, day 122.
			gomega.Expect(grid.Rows[0].Cells[121].Kind).To(gomega.Equal(DayHoliday))
		})

		ginkgo.It("marks nothing when the holiday set is empty", func() {
			addTeam("t1", "Kolonne 1", "")
			grid := builder.Build(Params{Year: 2024})

			for _, cell := range grid.Rows[0].Cells {
				gomega.Expect(cell.Kind).NotTo(gomega.Equal(DayHoliday))
			}
		})
	})

	ginkgo.Describe("vacation overlays", func() {
		ginkgo.BeforeEach(func() {
			addTeam("t1", "Kolonne 1", "")
		})

		ginkgo.It("paints every day of an approved range", func() {
			_, err := vacations.Create(vacation.Request{
				UserID:    "u1",
				TeamID:    "t1",
				StartDate: "2024-07-01",
				EndDate:   "2024-07-05",
				Status:    vacation.StatusApproved,
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			grid := builder.Build(Params{Year: 2024})
			cells := grid.Rows[0].Cells

			// 2024-07-01 is day 183.
			for offset := 182; offset <= 186; offset++ {
				gomega.Expect(cells[offset].Status).To(gomega.Equal(vacation.StatusApproved))
			}
			gomega.Expect(cells[181].Status).To(gomega.BeEmpty())
			gomega.Expect(cells[187].Status).To(gomega.BeEmpty())
		})

		ginkgo.It("lets a vacation status take precedence over weekend classification", func() {
			_, err := vacations.Create(vacation.Request{
				UserID:    "u1",
				TeamID:    "t1",
				StartDate: "2024-01-06",
				EndDate:   "2024-01-07",
				Status:    vacation.StatusPending,
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			grid := builder.Build(Params{Year: 2024})
			cell := grid.Rows[0].Cells[5]

			gomega.Expect(cell.Kind).To(gomega.Equal(DayWeekend))
			gomega.Expect(cell.Status).To(gomega.Equal(vacation.StatusPending))
		})

		ginkgo.It("paints rejected requests even though the legend omits them", func() {
			_, err := vacations.Create(vacation.Request{
				UserID:    "u1",
				TeamID:    "t1",
				StartDate: "2024-03-04",
				EndDate:   "2024-03-04",
				Status:    vacation.StatusRejected,
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			grid := builder.Build(Params{Year: 2024})
			// 2024-03-04 is day 64.
			gomega.Expect(grid.Rows[0].Cells[63].Status).To(gomega.Equal(vacation.StatusRejected))

			labels := make([]string, 0, 4)
			for _, entry := range Legend() {
				labels = append(labels, entry.Label)
			}
			gomega.Expect(labels).To(gomega.Equal([]string{
				"Genehmigter Urlaub", "Ausstehender Urlaub", "Feiertag", "Wochenende",
			}))
		})

		ginkgo.It("keeps overlays off other years", func() {
			_, err := vacations.Create(vacation.Request{
				UserID:    "u1",
				TeamID:    "t1",
				StartDate: "2024-07-01",
				EndDate:   "2024-07-05",
				Status:    vacation.StatusApproved,
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			grid := builder.Build(Params{Year: 2025})
			for _, cell := range grid.Rows[0].Cells {
				gomega.Expect(cell.Status).To(gomega.BeEmpty())
			}
		})
	})

	ginkgo.Describe("today marker", func() {
		ginkgo.BeforeEach(func() {
			addTeam("t1", "Kolonne 1", "")
			addTeam("t2", "Kolonne 2", "")
			builder.now = func() time.Time {
				return time.Date(2024, time.June, 15, 14, 30, 0, 0, time.UTC)
			}
		})

		ginkgo.It("marks exactly one column on every row for the current year", func() {
			grid := builder.Build(Params{Year: 2024})

			// 2024-06-15 is day 167 of the year.
			gomega.Expect(grid.TodayColumn).To(gomega.Equal(167))
			for _, row := range grid.Rows {
				marked := 0
				for offset, cell := range row.Cells {
					if cell.Today {
						marked++
						gomega.Expect(offset).To(gomega.Equal(166))
					}
				}
				gomega.Expect(marked).To(gomega.Equal(1))
			}
		})

		ginkgo.It("keeps the vacation status on today's cell as fill, today as metadata", func() {
			_, err := vacations.Create(vacation.Request{
				UserID:    "u1",
				TeamID:    "t1",
				StartDate: "2024-06-10",
				EndDate:   "2024-06-20",
				Status:    vacation.StatusApproved,
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			grid := builder.Build(Params{Year: 2024})
			cell := grid.Rows[0].Cells[166]

			gomega.Expect(cell.Today).To(gomega.BeTrue())
			gomega.Expect(cell.Status).To(gomega.Equal(vacation.StatusApproved))
		})

		ginkgo.It("marks nothing for other years", func() {
			grid := builder.Build(Params{Year: 2023})
			gomega.Expect(grid.TodayColumn).To(gomega.Equal(-1))
			for _, row := range grid.Rows {
				for _, cell := range row.Cells {
					gomega.Expect(cell.Today).To(gomega.BeFalse())
				}
			}
		})
	})

	ginkgo.Describe("views and filters", func() {
		ginkgo.BeforeEach(func() {
			addTeam("t1", "Kolonne 1", "IT")
			addTeam("t2", "Kolonne 2", "Produktion")

			it := "IT"
			_, err := users.Create(user.User{UserID: "u1", FirstName: "Anna", LastName: "Schmidt", Department: &it})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			prod := "Produktion"
			_, err = users.Create(user.User{UserID: "u2", FirstName: "Ben", LastName: "Klein", Department: &prod})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("keeps row order and filters teams by department", func() {
			grid := builder.Build(Params{Year: 2024, Department: "IT"})
			gomega.Expect(grid.Rows).To(gomega.HaveLen(1))
			gomega.Expect(grid.Rows[0].Name).To(gomega.Equal("Kolonne 1"))
		})

		ginkgo.It("treats 'all' like no filter", func() {
			grid := builder.Build(Params{Year: 2024, Department: "all"})
			gomega.Expect(grid.Rows).To(gomega.HaveLen(2))
			gomega.Expect(grid.Rows[0].Name).To(gomega.Equal("Kolonne 1"))
			gomega.Expect(grid.Rows[1].Name).To(gomega.Equal("Kolonne 2"))
		})

		ginkgo.It("rows employees in the employee view, matching requests by user", func() {
			_, err := vacations.Create(vacation.Request{
				UserID:    "u1",
				TeamID:    "t1",
				StartDate: "2024-02-05",
				EndDate:   "2024-02-05",
				Status:    vacation.StatusApproved,
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			grid := builder.Build(Params{Year: 2024, View: ViewByEmployee})
			gomega.Expect(grid.Rows).To(gomega.HaveLen(2))
			gomega.Expect(grid.Rows[0].Name).To(gomega.Equal("Anna Schmidt"))

			// 2024-02-05 is day 36.
			gomega.Expect(grid.Rows[0].Cells[35].Status).To(gomega.Equal(vacation.StatusApproved))
			gomega.Expect(grid.Rows[1].Cells[35].Status).To(gomega.BeEmpty())
		})
	})
})
