package pdf_test

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rptomey/silent-auction-card-generator/internal/pdf"
	"github.com/rptomey/silent-auction-card-generator/pkg/logger"
)

func sheetTestLogger() *logger.Logger {
	log := logger.New(
		logger.WithOutput(GinkgoWriter),
		logger.WithPrefix("[sheet-test] "),
		logger.WithFlags(0),
	)
	log.SetVerbose(true)
	return log
}

var _ = Describe("Print sheet", func() {
	var (
		tempDir string
		images  []string
		builder *pdf.SheetBuilder
		ctx     context.Context
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "sheet-test-*")
		Expect(err).NotTo(HaveOccurred())

		images = nil
		for i := 0; i < 3; i++ {
			path := filepath.Join(tempDir, fmt.Sprintf("card%d.png", i))
			img := imaging.New(260, 180, color.NRGBA{R: uint8(80 * i), G: 0x90, B: 0xc0, A: 0xff})
			Expect(imaging.Save(img, path)).To(Succeed())
			images = append(images, path)
		}

		builder = pdf.NewSheetBuilder(sheetTestLogger())
		ctx = context.Background()
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	It("should write one page per card", func() {
		out := filepath.Join(tempDir, "cards.pdf")
		pages, err := builder.Build(ctx, images, out)
		Expect(err).NotTo(HaveOccurred())
		Expect(pages).To(Equal(3))
		Expect(out).To(BeAnExistingFile())

		count, err := pdf.PageCount(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(3))
	})

	It("should replace an existing sheet", func() {
		out := filepath.Join(tempDir, "cards.pdf")
		_, err := builder.Build(ctx, images, out)
		Expect(err).NotTo(HaveOccurred())

		pages, err := builder.Build(ctx, images[:1], out)
		Expect(err).NotTo(HaveOccurred())
		Expect(pages).To(Equal(1))
	})

	It("should refuse an empty card list", func() {
		_, err := builder.Build(ctx, nil, filepath.Join(tempDir, "cards.pdf"))
		Expect(err).To(HaveOccurred())
	})

	It("should stop when cancelled", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := builder.Build(cancelled, images, filepath.Join(tempDir, "cards.pdf"))
		Expect(err).To(MatchError(context.Canceled))
	})
})
