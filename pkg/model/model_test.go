package model_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/uuid"

	"github.com/stakeai/vectordb/pkg/model"
)

var _ = Describe("Library", func() {
	It("initializes empty collections instead of nil", func() {
		library := model.NewLibrary("Docs", "", nil)

		Expect(library.Metadata).NotTo(BeNil())
		Expect(library.DocumentIDs).NotTo(BeNil())
		Expect(library.DocumentCount()).To(Equal(0))
	})

	It("tracks document membership without duplicates", func() {
		library := model.NewLibrary("Docs", "", nil)
		documentID := uuid.New()

		library.AddDocumentID(documentID)
		library.AddDocumentID(documentID)

		Expect(library.DocumentCount()).To(Equal(1))
		Expect(library.HasDocument(documentID)).To(BeTrue())

		Expect(library.RemoveDocumentID(documentID)).To(BeTrue())
		Expect(library.RemoveDocumentID(documentID)).To(BeFalse())
		Expect(library.HasDocument(documentID)).To(BeFalse())
	})

	It("preserves insertion order of members", func() {
		library := model.NewLibrary("Docs", "", nil)
		first, second, third := uuid.New(), uuid.New(), uuid.New()

		library.AddDocumentID(first)
		library.AddDocumentID(second)
		library.AddDocumentID(third)
		library.RemoveDocumentID(second)

		Expect(library.DocumentIDs).To(Equal([]uuid.UUID{first, third}))
	})

	It("clones independently of the original", func() {
		library := model.NewLibrary("Docs", "", map[string]any{"team": "search"})
		library.AddDocumentID(uuid.New())

		dup := library.Clone()
		dup.AddDocumentID(uuid.New())
		dup.Metadata["team"] = "infra"

		Expect(library.DocumentCount()).To(Equal(1))
		Expect(library.Metadata["team"]).To(Equal("search"))
	})
})

var _ = Describe("Document", func() {
	It("tracks chunk membership", func() {
		libraryID := uuid.New()
		document := model.NewDocument("T", "", nil, libraryID)
		chunkID := uuid.New()

		document.AddChunkID(chunkID)
		document.AddChunkID(chunkID)

		Expect(document.ChunkCount()).To(Equal(1))
		Expect(document.HasChunk(chunkID)).To(BeTrue())
		Expect(document.RemoveChunkID(chunkID)).To(BeTrue())
		Expect(document.ChunkCount()).To(Equal(0))
	})
})

var _ = Describe("Chunk", func() {
	It("derives its dimension from the vector", func() {
		chunk := model.NewChunk([]float32{1, 2, 3}, nil, uuid.Nil)
		Expect(chunk.Dimension()).To(Equal(3))
	})

	It("clones its vector and metadata", func() {
		chunk := model.NewChunk([]float32{1, 2}, map[string]any{"page": 1}, uuid.New())

		dup := chunk.Clone()
		dup.Vector[0] = 9
		dup.Metadata["page"] = 2

		Expect(chunk.Vector[0]).To(Equal(float32(1)))
		Expect(chunk.Metadata["page"]).To(Equal(1))
		Expect(dup.ID).To(Equal(chunk.ID))
		Expect(dup.DocumentID).To(Equal(chunk.DocumentID))
	})
})
