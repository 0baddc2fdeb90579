package model

import (
	"time"

	"gorm.io/datatypes"
)

type CorpusChunk struct {
	ContentAddress string         `gorm:"primaryKey;size:64"` // sha256 of document id + span text
	DocumentId     string         `gorm:"size:512;not null;index"`
	ChunkIndex     int            `gorm:"not null"`
	SpanStart      int            `gorm:"default:0"`
	SpanEnd        int            `gorm:"default:0"`
	Content        string         `gorm:"type:text"`
	Embedding      datatypes.JSON `gorm:"not null"` // []float32 serialized as a JSON array
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
}

func (CorpusChunk) TableName() string {
	return "corpus_chunks"
}
