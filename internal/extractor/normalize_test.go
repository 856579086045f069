package extractor_test

import (
	"betawave/internal/extractor"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DeriveArtist", func() {
	DescribeTable("picking the display artist",
		func(meta extractor.TrackMeta, expected string) {
			Expect(extractor.DeriveArtist(meta)).To(Equal(expected))
		},

		Entry("explicit artist field wins",
			extractor.TrackMeta{Artist: "Queen", Creator: "someone", Uploader: "other"},
			"Queen"),

		Entry("creator is used when artist is missing",
			extractor.TrackMeta{Creator: "Daft Punk", Uploader: "other"},
			"Daft Punk"),

		Entry("uploader is used when artist and creator are missing",
			extractor.TrackMeta{Uploader: "NPR Music", Channel: "NPR Music"},
			"NPR Music"),

		Entry("channel is used when it is not an auto-generated topic channel",
			extractor.TrackMeta{Channel: "SomeChannel"},
			"SomeChannel"),

		Entry("title in Artist - Title form is split",
			extractor.TrackMeta{Title: "Daft Punk - Around the World"},
			"Daft Punk"),

		Entry("topic marker inside the title prefix is truncated",
			extractor.TrackMeta{Title: "Daft Punk Topic - Around the World"},
			"Daft Punk"),

		Entry("topic channel suffix is stripped as a last resort",
			extractor.TrackMeta{Title: "Random Title", Channel: "SomeChannel - Topic"},
			"SomeChannel"),

		Entry("topic channel does not shadow a splittable title",
			extractor.TrackMeta{Title: "Queen - Bohemian Rhapsody", Channel: "Queen - Topic"},
			"Queen"),

		Entry("nothing usable falls back to the unknown artist",
			extractor.TrackMeta{Title: "Random Title"},
			"Unknown Artist"),

		Entry("empty metadata falls back to the unknown artist",
			extractor.TrackMeta{},
			"Unknown Artist"),
	)
})
