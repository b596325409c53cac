package errors_test

import (
	stderrors "errors"
	"fmt"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rptomey/silent-auction-card-generator/pkg/errors"
)

var _ = Describe("Coded errors", func() {
	It("should format code, message and cause", func() {
		err := errors.Wrap(errors.ErrCodeMissingResource, os.ErrNotExist, "font %q", "a.ttf")
		Expect(err.Error()).To(Equal(`MISSING_RESOURCE: font "a.ttf": file does not exist`))
		Expect(stderrors.Is(err, os.ErrNotExist)).To(BeTrue())
	})

	It("should format without a cause", func() {
		err := errors.New(errors.ErrCodeInvalidConfig, "bad size %d", -1)
		Expect(err.Error()).To(Equal("INVALID_CONFIG: bad size -1"))
	})

	It("should find codes through fmt wrapping", func() {
		inner := errors.New(errors.ErrCodeMissingTemplateConfig, "no layout")
		outer := fmt.Errorf("rendering lamp: %w", inner)

		Expect(errors.Is(outer, errors.ErrCodeMissingTemplateConfig)).To(BeTrue())
		Expect(errors.Is(outer, errors.ErrCodeInvalidConfig)).To(BeFalse())
		Expect(errors.GetCode(outer)).To(Equal(errors.ErrCodeMissingTemplateConfig))
	})

	It("should find nested codes", func() {
		inner := errors.New(errors.ErrCodeMissingResource, "template image")
		outer := errors.Wrap(errors.ErrCodeRenderFailed, inner, "card")

		Expect(errors.Is(outer, errors.ErrCodeMissingResource)).To(BeTrue())
		Expect(errors.GetCode(outer)).To(Equal(errors.ErrCodeRenderFailed))
	})

	It("should report no code for plain errors", func() {
		Expect(errors.GetCode(stderrors.New("plain"))).To(BeEmpty())
		Expect(errors.Is(nil, errors.ErrCodeRenderFailed)).To(BeFalse())
	})
})
