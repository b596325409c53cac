package acceptance_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rptomey/silent-auction-card-generator/internal/batch"
	"github.com/rptomey/silent-auction-card-generator/internal/card"
	"github.com/rptomey/silent-auction-card-generator/internal/config"
	"github.com/rptomey/silent-auction-card-generator/internal/items"
	"github.com/rptomey/silent-auction-card-generator/internal/pdf"
	"github.com/rptomey/silent-auction-card-generator/internal/testutil"
	"github.com/rptomey/silent-auction-card-generator/pkg/logger"
	"github.com/rptomey/silent-auction-card-generator/pkg/models"
	"github.com/rptomey/silent-auction-card-generator/pkg/utils"
	"github.com/rptomey/silent-auction-card-generator/tests/acceptance"
)

var auctionItems = []models.ItemRecord{
	{Name: "Vintage Lamp", StartingBid: "$25", AuctionURL: "https://x/1", TemplateID: testutil.TemplateA},
	{Name: "Mystery Box", StartingBid: "$5", AuctionURL: "https://x/2", TemplateID: "template_z.png"},
	{Name: strings.Repeat("Weekend Getaway For Two At The Lakeside Lodge ", 6), StartingBid: "$400", AuctionURL: "https://x/3", TemplateID: testutil.TemplateA},
	{Name: "Signed Jersey", StartingBid: "$100", AuctionURL: "https://x/4", TemplateID: testutil.TemplateB},
}

var _ = Describe("Card generation end-to-end", Ordered, func() {
	var (
		fixture    *testutil.Fixture
		cfg        *config.Config
		inputPath  string
		testLogger *logger.Logger
		ctx        context.Context
	)

	run := func(workers int) *batch.Report {
		records, err := items.LoadFile(inputPath)
		Expect(err).NotTo(HaveOccurred())

		composer, err := card.NewComposer(cfg, cfg.OutputDir, testLogger)
		Expect(err).NotTo(HaveOccurred())

		report, err := batch.NewRunner(composer, batch.ManifestPath(cfg.OutputDir, cfg.ManifestFile), workers, testLogger).
			Run(ctx, records)
		Expect(err).NotTo(HaveOccurred())
		return report
	}

	BeforeAll(func() {
		var err error
		fixture, err = testutil.NewFixture()
		Expect(err).NotTo(HaveOccurred())

		configPath, err := fixture.WriteConfig()
		Expect(err).NotTo(HaveOccurred())
		cfg, err = config.Load(configPath)
		Expect(err).NotTo(HaveOccurred())

		inputPath, err = fixture.WriteItems(auctionItems)
		Expect(err).NotTo(HaveOccurred())

		testLogger = logger.New(logger.WithOutput(GinkgoWriter), logger.WithPrefix("[e2e] "), logger.WithFlags(0))
		ctx = context.Background()
	})

	AfterAll(func() {
		Expect(fixture.Cleanup()).To(Succeed())
	})

	It("should render every configured row and skip the rest", Label("happy-path"), func() {
		report := run(1)

		By("writing a manifest entry per rendered card, in input order")
		entries, err := batch.ReadManifest(filepath.Join(fixture.OutputDir, config.DefaultManifestFile))
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(3))
		Expect(entries[0]).To(Equal(models.ManifestEntry{
			Filename:   utils.CardFilename("Vintage Lamp", testutil.TemplateA),
			ItemName:   "Vintage Lamp",
			TemplateID: testutil.TemplateA,
		}))
		Expect(entries[1].ItemName).To(Equal(auctionItems[2].Name))
		Expect(entries[2].ItemName).To(Equal("Signed Jersey"))

		By("writing an image for every entry and nothing else")
		hashes, err := acceptance.DirHashes(fixture.OutputDir, ".png")
		Expect(err).NotTo(HaveOccurred())
		Expect(hashes).To(HaveLen(3))
		for _, e := range entries {
			Expect(hashes).To(HaveKey(e.Filename))
		}

		By("reporting the skipped row and the overflow")
		Expect(report.Failures).To(HaveLen(1))
		Expect(report.Failures[0].Item.Name).To(Equal("Mystery Box"))
		Expect(report.Failures[0].Item.Row).To(Equal(3))
		Expect(report.Overflowed).To(Equal(1))
	})

	It("should reproduce identical files on a rerun", func() {
		before, err := acceptance.DirHashes(fixture.OutputDir, ".png")
		Expect(err).NotTo(HaveOccurred())

		run(3)

		after, err := acceptance.DirHashes(fixture.OutputDir, ".png")
		Expect(err).NotTo(HaveOccurred())
		Expect(acceptance.SortedKeys(after)).To(Equal(acceptance.SortedKeys(before)))
		Expect(after).To(Equal(before))
	})

	It("should bundle the cards into a printable PDF", Label("print-sheet"), func() {
		entries, err := batch.ReadManifest(filepath.Join(fixture.OutputDir, config.DefaultManifestFile))
		Expect(err).NotTo(HaveOccurred())

		var paths []string
		for _, e := range entries {
			paths = append(paths, filepath.Join(fixture.OutputDir, e.Filename))
		}

		sheetPath := filepath.Join(fixture.Root, "cards.pdf")
		pages, err := pdf.NewSheetBuilder(testLogger).Build(ctx, paths, sheetPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(pages).To(Equal(len(entries)))

		doc, err := fitz.New(sheetPath)
		Expect(err).NotTo(HaveOccurred())
		defer doc.Close()

		Expect(doc.NumPage()).To(Equal(len(entries)))
		img, err := doc.Image(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Bounds().Dx()).To(BeNumerically(">", 0))

		info, err := os.Stat(sheetPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Size()).To(BeNumerically(">", 0))
	})
})
