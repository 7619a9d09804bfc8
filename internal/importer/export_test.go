package importer

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/urlaubsplaner/urlaubsplaner/internal/overview"
	"github.com/urlaubsplaner/urlaubsplaner/internal/storage"
	"github.com/urlaubsplaner/urlaubsplaner/internal/user"
	"github.com/urlaubsplaner/urlaubsplaner/internal/vacation"
	"github.com/urlaubsplaner/urlaubsplaner/pkg/logger"
	"github.com/xuri/excelize/v2"
)

func ptr(s string) *string { return &s }

var _ = ginkgo.Describe("ExportUsers", func() {
	var dir string

	ginkgo.BeforeEach(func() {
		dir = ginkgo.GinkgoT().TempDir()
	})

	ginkgo.It("writes a workbook the import path can read back", func() {
		users := []user.User{
			{
				UserID:     "100",
				FirstName:  "Anna",
				LastName:   "Schmidt",
				Email:      ptr("anna@example.com"),
				Department: ptr("42"),
				Birthday:   ptr("1990-05-01"),
			},
			{UserID: "200", FirstName: "Ben", LastName: "Klein"},
		}

		path := filepath.Join(dir, "benutzer.xlsx")
		gomega.Expect(ExportUsers(users, path)).To(gomega.Succeed())

		table, err := ReadTable(path)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		for _, col := range []string{ColID, ColFirstName, ColLastName, ColEmail, ColPhone, ColDeptNo, ColPosition, ColBirthday, ColEntryDate} {
			gomega.Expect(table.HasColumn(col)).To(gomega.BeTrue(), "column %s", col)
		}
		gomega.Expect(table.Rows).To(gomega.HaveLen(2))
		gomega.Expect(table.Rows[0].Get(ColID)).To(gomega.Equal("100"))
		gomega.Expect(table.Rows[0].Get(ColEmail)).To(gomega.Equal("anna@example.com"))
		gomega.Expect(table.Rows[1].Has(ColEmail)).To(gomega.BeFalse())
	})

	ginkgo.It("round-trips users through export and import", func() {
		users := []user.User{
			{
				UserID:    "100",
				FirstName: "Anna",
				LastName:  "Schmidt",
				Email:     ptr("anna@example.com"),
				Birthday:  ptr("1990-05-01"),
			},
		}

		path := filepath.Join(dir, "benutzer.xlsx")
		gomega.Expect(ExportUsers(users, path)).To(gomega.Succeed())

		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		store, err := storage.Open(ginkgo.GinkgoT().TempDir(), log)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx := logger.Into(context.Background(), log)

		summary, err := New(store).ImportUsersFromFile(ctx, path)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(summary.Imported).To(gomega.Equal(1))

		rec, ok := store.GetUser(storage.UserQuery{UserID: "100"})
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(rec.String("first_name")).To(gomega.Equal("Anna"))
		gomega.Expect(rec.String("email")).To(gomega.Equal("anna@example.com"))
		gomega.Expect(rec.String("birthday")).To(gomega.Equal("1990-05-01"))
		gomega.Expect(rec["phone"]).To(gomega.BeNil())
	})
})

var _ = ginkgo.Describe("ExportOverview", func() {
	ginkgo.It("writes row labels, month headers and cell fills", func() {
		grid := &overview.Grid{
			Year:        2024,
			Headers:     []string{"", "Jan", ""},
			TodayColumn: -1,
			Rows: []overview.Row{
				{
					ID:   "t1",
					Name: "Kolonne 1",
					Cells: []overview.Cell{
						{Status: vacation.StatusApproved},
						{Kind: overview.DayWeekend},
					},
				},
			},
		}

		path := filepath.Join(ginkgo.GinkgoT().TempDir(), "uebersicht.xlsx")
		gomega.Expect(ExportOverview(grid, path)).To(gomega.Succeed())

		f, err := excelize.OpenFile(path)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		defer f.Close()

		sheet := f.GetSheetName(0)
		name, err := f.GetCellValue(sheet, "A2")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(name).To(gomega.Equal("Kolonne 1"))

		month, err := f.GetCellValue(sheet, "B1")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(month).To(gomega.Equal("Jan"))

		for _, cell := range []string{"B2", "C2"} {
			styleID, err := f.GetCellStyle(sheet, cell)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(styleID).NotTo(gomega.BeZero(), "cell %s", cell)
		}
	})
})
