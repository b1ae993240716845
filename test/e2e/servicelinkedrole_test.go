package e2e_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jeffscottlevine/aws-idempotent-create-service-linked-role/internal/domain/iam"
)

var _ = Describe("EnsureRole", func() {
	const serviceName = "inspector.amazonaws.com"

	It("ensures the role exists and returns its identity", func() {
		role, err := ensurer.EnsureRole(ctx, serviceName)
		Expect(err).NotTo(HaveOccurred())
		Expect(role.RoleArn).NotTo(BeEmpty())
		Expect(role.RoleId).NotTo(BeEmpty())
		Expect(role.RoleName).To(Equal("AWSServiceRoleForAmazonInspector"))
	})

	It("returns the same identity when invoked again", func() {
		first, err := ensurer.EnsureRole(ctx, serviceName)
		Expect(err).NotTo(HaveOccurred())

		second, err := ensurer.EnsureRole(ctx, serviceName)
		Expect(err).NotTo(HaveOccurred())

		Expect(second.RoleArn).To(Equal(first.RoleArn))
		Expect(second.RoleId).To(Equal(first.RoleId))
	})

	It("rejects services without a known role mapping", func() {
		_, err := ensurer.EnsureRole(ctx, "unknown.amazonaws.com")
		Expect(err).To(MatchError(iam.ErrUnsupportedService))
	})
})
