package scanner_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rptomey/silent-auction-card-generator/internal/scanner"
	"github.com/rptomey/silent-auction-card-generator/pkg/logger"
)

var _ = Describe("Scanner", func() {
	var (
		testDir    string
		testLogger *logger.Logger
		ctx        context.Context
	)

	BeforeEach(func() {
		var err error
		testDir, err = os.MkdirTemp("", "scanner-test-*")
		Expect(err).NotTo(HaveOccurred())

		testLogger = logger.New(logger.WithOutput(GinkgoWriter), logger.WithPrefix("[test] "))
		testLogger.SetLevel(logger.LevelTrace)
		ctx = context.Background()
	})

	AfterEach(func() {
		os.RemoveAll(testDir)
	})

	Context("when scanning an empty directory", func() {
		It("should return an error", func() {
			s := scanner.New(testLogger)
			_, err := s.FindTemplates(ctx, testDir)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("no template images found"))
		})
	})

	Context("when scanning a directory with images", func() {
		BeforeEach(func() {
			for i := 1; i <= 3; i++ {
				err := os.WriteFile(
					filepath.Join(testDir, fmt.Sprintf("template_%d.png", i)),
					[]byte("dummy image content"),
					0644,
				)
				Expect(err).NotTo(HaveOccurred())
			}

			Expect(os.WriteFile(filepath.Join(testDir, "photo.JPG"), []byte("jpeg"), 0644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(testDir, "notes.txt"), []byte("text file"), 0644)).To(Succeed())
		})

		It("should find only image files", func() {
			s := scanner.New(testLogger)
			templates, err := s.FindTemplates(ctx, testDir)

			Expect(err).NotTo(HaveOccurred())
			Expect(templates).To(HaveLen(4))

			for _, t := range templates {
				Expect(t.AbsolutePath).To(BeAnExistingFile())
				Expect(filepath.IsAbs(t.AbsolutePath)).To(BeTrue())
			}
		})
	})

	Context("when scanning nested directories", func() {
		BeforeEach(func() {
			nestedDir := filepath.Join(testDir, "seasonal")
			Expect(os.MkdirAll(nestedDir, 0755)).To(Succeed())

			for _, file := range []string{
				filepath.Join(testDir, "template_a.png"),
				filepath.Join(nestedDir, "winter.png"),
			} {
				Expect(os.WriteFile(file, []byte("dummy image content"), 0644)).To(Succeed())
			}
		})

		It("should use slash-separated relative paths as IDs", func() {
			s := scanner.New(testLogger)
			templates, err := s.FindTemplates(ctx, testDir)

			Expect(err).NotTo(HaveOccurred())
			var ids []string
			for _, t := range templates {
				ids = append(ids, t.ID)
			}
			Expect(ids).To(ConsistOf("template_a.png", "seasonal/winter.png"))
		})
	})

	Context("when context is cancelled", func() {
		It("should stop scanning", func() {
			Expect(os.MkdirAll(filepath.Join(testDir, "deep", "deeper"), 0755)).To(Succeed())

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			s := scanner.New(testLogger)
			_, err := s.FindTemplates(ctx, testDir)

			Expect(err).To(Equal(context.Canceled))
		})
	})

	Context("Compare", func() {
		It("should split templates by layout coverage", func() {
			found := []scanner.TemplateFile{{ID: "b.png"}, {ID: "a.png"}, {ID: "c.png"}}
			coverage := scanner.Compare(found, []string{"a.png", "b.png", "z.png"})

			Expect(coverage.Ready).To(Equal([]string{"a.png", "b.png"}))
			Expect(coverage.Unconfigured).To(Equal([]string{"c.png"}))
			Expect(coverage.Missing).To(Equal([]string{"z.png"}))
		})
	})
})
