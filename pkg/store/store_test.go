package store_test

import (
	"context"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stakeai/vectordb/pkg/model"
	"github.com/stakeai/vectordb/pkg/store"
)

var _ = Describe("Store", func() {
	var (
		s   *store.Store[*model.Library]
		ctx context.Context
	)

	BeforeEach(func() {
		s = store.New[*model.Library]("library")
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("inserts and returns the entity", func() {
			library := model.NewLibrary("docs", "", nil)

			created, err := s.Create(ctx, library)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(Equal(library.ID))
			Expect(s.Len()).To(Equal(1))
		})

		It("returns ConflictError on duplicate identifiers", func() {
			library := model.NewLibrary("docs", "", nil)

			_, err := s.Create(ctx, library)
			Expect(err).NotTo(HaveOccurred())

			_, err = s.Create(ctx, library)
			var conflict store.ConflictError
			Expect(err).To(BeAssignableToTypeOf(conflict))
		})
	})

	Describe("Get", func() {
		It("reports absence without an error", func() {
			_, ok := s.Get(ctx, model.NewLibrary("x", "", nil).ID)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("List", func() {
		It("returns entities in insertion order", func() {
			first := model.NewLibrary("first", "", nil)
			second := model.NewLibrary("second", "", nil)
			third := model.NewLibrary("third", "", nil)

			for _, l := range []*model.Library{first, second, third} {
				_, err := s.Create(ctx, l)
				Expect(err).NotTo(HaveOccurred())
			}

			listed := s.List(ctx)
			Expect(listed).To(HaveLen(3))
			Expect(listed[0].Name).To(Equal("first"))
			Expect(listed[1].Name).To(Equal("second"))
			Expect(listed[2].Name).To(Equal("third"))
		})

		It("returns a snapshot unaffected by later mutations", func() {
			library := model.NewLibrary("docs", "", nil)
			_, err := s.Create(ctx, library)
			Expect(err).NotTo(HaveOccurred())

			listed := s.List(ctx)
			s.Delete(ctx, library.ID)

			Expect(listed).To(HaveLen(1))
		})
	})

	Describe("ListWhere", func() {
		It("filters by predicate", func() {
			_, err := s.Create(ctx, model.NewLibrary("keep", "", nil))
			Expect(err).NotTo(HaveOccurred())
			_, err = s.Create(ctx, model.NewLibrary("drop", "", nil))
			Expect(err).NotTo(HaveOccurred())

			kept := s.ListWhere(ctx, func(l *model.Library) bool {
				return l.Name == "keep"
			})
			Expect(kept).To(HaveLen(1))
			Expect(kept[0].Name).To(Equal("keep"))
		})
	})

	Describe("Update", func() {
		It("replaces the stored value", func() {
			library := model.NewLibrary("docs", "", nil)
			_, err := s.Create(ctx, library)
			Expect(err).NotTo(HaveOccurred())

			renamed := library.Clone()
			renamed.Name = "renamed"
			_, err = s.Update(ctx, renamed)
			Expect(err).NotTo(HaveOccurred())

			got, ok := s.Get(ctx, library.ID)
			Expect(ok).To(BeTrue())
			Expect(got.Name).To(Equal("renamed"))
		})

		It("returns NotFoundError for an absent identifier", func() {
			_, err := s.Update(ctx, model.NewLibrary("ghost", "", nil))
			var notFound store.NotFoundError
			Expect(err).To(BeAssignableToTypeOf(notFound))
		})

		It("keeps the entity's insertion position", func() {
			first := model.NewLibrary("first", "", nil)
			second := model.NewLibrary("second", "", nil)
			_, err := s.Create(ctx, first)
			Expect(err).NotTo(HaveOccurred())
			_, err = s.Create(ctx, second)
			Expect(err).NotTo(HaveOccurred())

			updated := first.Clone()
			updated.Name = "still first"
			_, err = s.Update(ctx, updated)
			Expect(err).NotTo(HaveOccurred())

			listed := s.List(ctx)
			Expect(listed[0].Name).To(Equal("still first"))
		})
	})

	Describe("Delete", func() {
		It("reports whether removal occurred", func() {
			library := model.NewLibrary("docs", "", nil)
			_, err := s.Create(ctx, library)
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Delete(ctx, library.ID)).To(BeTrue())
			Expect(s.Delete(ctx, library.ID)).To(BeFalse())
			Expect(s.Len()).To(Equal(0))
		})
	})

	Describe("concurrent access", func() {
		It("stays consistent under parallel creates and deletes", func() {
			const workers = 8
			const perWorker = 50

			var wg sync.WaitGroup
			wg.Add(workers)
			for range workers {
				go func() {
					defer wg.Done()
					defer GinkgoRecover()
					for range perWorker {
						library := model.NewLibrary("concurrent", "", nil)
						_, err := s.Create(ctx, library)
						Expect(err).NotTo(HaveOccurred())
						s.List(ctx)
						Expect(s.Delete(ctx, library.ID)).To(BeTrue())
					}
				}()
			}
			wg.Wait()

			Expect(s.Len()).To(Equal(0))
		})
	})
})
