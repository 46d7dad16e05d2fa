package vecmath_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stakeai/vectordb/pkg/vecmath"
)

var _ = Describe("CosineSimilarity", func() {
	It("is symmetric", func() {
		a := []float32{1, 2, 3}
		b := []float32{4, 5, 6}

		ab, err := vecmath.CosineSimilarity(a, b)
		Expect(err).NotTo(HaveOccurred())
		ba, err := vecmath.CosineSimilarity(b, a)
		Expect(err).NotTo(HaveOccurred())

		Expect(ab).To(Equal(ba))
	})

	It("returns 1.0 for a non-zero vector against itself", func() {
		a := []float32{3, 4}

		score, err := vecmath.CosineSimilarity(a, a)
		Expect(err).NotTo(HaveOccurred())
		Expect(score).To(BeNumerically("~", 1.0, 1e-6))
	})

	It("returns 0.0 when either vector has zero magnitude", func() {
		zero := []float32{0, 0}
		a := []float32{3, 4}

		score, err := vecmath.CosineSimilarity(zero, a)
		Expect(err).NotTo(HaveOccurred())
		Expect(score).To(Equal(float32(0)))

		score, err = vecmath.CosineSimilarity(a, zero)
		Expect(err).NotTo(HaveOccurred())
		Expect(score).To(Equal(float32(0)))
	})

	It("returns -1.0 for opposite vectors", func() {
		a := []float32{1, 0}
		b := []float32{-1, 0}

		score, err := vecmath.CosineSimilarity(a, b)
		Expect(err).NotTo(HaveOccurred())
		Expect(score).To(BeNumerically("~", -1.0, 1e-6))
	})

	It("fails on mismatched dimensions", func() {
		_, err := vecmath.CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3})
		Expect(err).To(MatchError(vecmath.ErrDimensionMismatch))
	})
})

var _ = Describe("EuclideanDistance", func() {
	It("computes the L2 distance", func() {
		dist, err := vecmath.EuclideanDistance([]float32{0, 0}, []float32{3, 4})
		Expect(err).NotTo(HaveOccurred())
		Expect(dist).To(BeNumerically("~", 5.0, 1e-6))
	})

	It("returns 0.0 for identical vectors", func() {
		dist, err := vecmath.EuclideanDistance([]float32{1, 2, 3}, []float32{1, 2, 3})
		Expect(err).NotTo(HaveOccurred())
		Expect(dist).To(Equal(float32(0)))
	})

	It("fails on mismatched dimensions", func() {
		_, err := vecmath.EuclideanDistance([]float32{1}, []float32{1, 2})
		Expect(err).To(MatchError(vecmath.ErrDimensionMismatch))
	})
})
