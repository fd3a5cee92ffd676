package identity_test

import (
	"encoding/base64"
	"strings"

	"suitax/internal/identity"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Classify", func() {

	When("input is empty or whitespace only", func() {
		It("should classify as invalid", func() {
			Expect(identity.Classify("")).To(Equal(identity.KindInvalid))
			Expect(identity.Classify("   ")).To(Equal(identity.KindInvalid))
			Expect(identity.Classify("\t\n")).To(Equal(identity.KindInvalid))
		})
	})

	When("input length is not 43, 44 or 64 after trimming", func() {
		It("should classify as invalid", func() {
			for _, n := range []int{1, 10, 42, 45, 63, 65, 100} {
				value := strings.Repeat("a", n)
				Expect(identity.Classify(value)).To(Equal(identity.KindInvalid), "length %d", n)
			}
		})
	})

	When("input is a 64 character hex string", func() {
		It("should classify as transaction digest", func() {
			value := strings.Repeat("ab", 32)
			Expect(identity.Classify(value)).To(Equal(identity.KindTransaction))
		})

		It("should accept upper case hex", func() {
			value := strings.Repeat("AB", 32)
			Expect(identity.Classify(value)).To(Equal(identity.KindTransaction))
		})

		It("should tolerate surrounding whitespace", func() {
			value := "  " + strings.Repeat("ab", 32) + "\n"
			Expect(identity.Classify(value)).To(Equal(identity.KindTransaction))
		})
	})

	When("input is base64 that decodes to exactly 32 bytes", func() {
		It("should classify the padded 44 character form as transaction digest", func() {
			value := base64.StdEncoding.EncodeToString(make([]byte, 32))
			Expect(value).To(HaveLen(44))
			Expect(identity.Classify(value)).To(Equal(identity.KindTransaction))
		})

		It("should classify the unpadded 43 character form as transaction digest", func() {
			value := base64.StdEncoding.EncodeToString(make([]byte, 32))
			unpadded := strings.TrimRight(value, "=")
			Expect(unpadded).To(HaveLen(43))
			Expect(identity.Classify(unpadded)).To(Equal(identity.KindTransaction))
		})
	})

	When("input has digest length but the wrong alphabet", func() {
		It("should classify as invalid", func() {
			value := strings.Repeat("!", 44)
			Expect(identity.Classify(value)).To(Equal(identity.KindInvalid))
		})
	})

	When("input is base64 that decodes to the wrong byte count", func() {
		It("should classify as invalid", func() {
			// 44 chars with double padding decode to 31 bytes.
			value := base64.StdEncoding.EncodeToString(make([]byte, 31))
			Expect(value).To(HaveLen(44))
			Expect(identity.Classify(value)).To(Equal(identity.KindInvalid))
		})
	})

	When("input is a 64 character hex address with 0x prefix", func() {
		It("should classify as account", func() {
			value := "0x" + strings.Repeat("cd", 32)
			Expect(identity.Classify(value)).To(Equal(identity.KindAccount))
		})
	})
})

var _ = Describe("IsAddress", func() {

	It("should accept 64 hex characters without prefix", func() {
		Expect(identity.IsAddress(strings.Repeat("0", 64))).To(BeTrue())
	})

	It("should accept 64 hex characters with 0x prefix", func() {
		Expect(identity.IsAddress("0x" + strings.Repeat("f", 64))).To(BeTrue())
	})

	It("should reject wrong lengths", func() {
		Expect(identity.IsAddress(strings.Repeat("f", 40))).To(BeFalse())
		Expect(identity.IsAddress("0x" + strings.Repeat("f", 63))).To(BeFalse())
	})

	It("should reject non-hex characters", func() {
		Expect(identity.IsAddress(strings.Repeat("g", 64))).To(BeFalse())
	})
})
