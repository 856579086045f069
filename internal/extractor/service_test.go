package extractor_test

import (
	"context"
	"errors"

	"betawave/internal/extractor"
	"betawave/internal/extractor/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Service", func() {
	var (
		fakeClient *fake.ExtractClient
		service    *extractor.Service
		ctx        context.Context
		fakeErr    error
	)

	BeforeEach(func() {
		fakeClient = new(fake.ExtractClient)
		service = extractor.NewService(fakeClient)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("ResolveTrack", func() {
		var (
			track extractor.Track
			err   error
		)

		JustBeforeEach(func() {
			track, err = service.ResolveTrack(ctx, "https://youtu.be/abc123")
		})

		When("metadata has a title and artist", func() {
			BeforeEach(func() {
				fakeClient.ExtractReturns(&extractor.TrackMeta{
					Title:     "Around the World",
					Artist:    "Daft Punk",
					StreamURL: "https://cdn.example.com/stream.m4a",
				}, nil)
			})

			It("should return the normalized track", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(track.Name).To(Equal("Around the World"))
				Expect(track.Artist).To(Equal("Daft Punk"))
				Expect(track.StreamURL).To(Equal("https://cdn.example.com/stream.m4a"))

				Expect(fakeClient.ExtractCallCount()).To(Equal(1))
				_, argURL := fakeClient.ExtractArgsForCall(0)
				Expect(argURL).To(Equal("https://youtu.be/abc123"))
			})
		})

		When("metadata has no explicit artist", func() {
			BeforeEach(func() {
				fakeClient.ExtractReturns(&extractor.TrackMeta{
					Title:   "Queen - Bohemian Rhapsody",
					Channel: "Queen - Topic",
				}, nil)
			})

			It("should derive the artist from the raw metadata", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(track.Artist).To(Equal("Queen"))
			})
		})

		When("metadata has no title", func() {
			BeforeEach(func() {
				fakeClient.ExtractReturns(&extractor.TrackMeta{Uploader: "someone"}, nil)
			})

			It("should return no title error", func() {
				Expect(err).To(MatchError(extractor.ErrNoTitle))
			})
		})

		When("extraction fails", func() {
			BeforeEach(func() {
				fakeClient.ExtractReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("StreamURL", func() {
		var (
			streamURL string
			err       error
		)

		JustBeforeEach(func() {
			streamURL, err = service.StreamURL(ctx, "https://youtu.be/abc123")
		})

		When("metadata carries a stream url", func() {
			BeforeEach(func() {
				fakeClient.ExtractReturns(&extractor.TrackMeta{
					Title:     "Some Track",
					StreamURL: "https://cdn.example.com/stream.m4a",
				}, nil)
			})

			It("should return it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(streamURL).To(Equal("https://cdn.example.com/stream.m4a"))
			})
		})

		When("metadata has no stream url", func() {
			BeforeEach(func() {
				fakeClient.ExtractReturns(&extractor.TrackMeta{Title: "Some Track"}, nil)
			})

			It("should return no stream error", func() {
				Expect(err).To(MatchError(extractor.ErrNoStream))
			})
		})

		When("extraction fails", func() {
			BeforeEach(func() {
				fakeClient.ExtractReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DownloadLink", func() {
		var (
			meta extractor.DownloadMeta
			err  error
		)

		JustBeforeEach(func() {
			meta, err = service.DownloadLink(ctx, "https://youtu.be/abc123", "mp3")
		})

		When("the sidecar resolves a file", func() {
			BeforeEach(func() {
				fakeClient.DownloadReturns(&extractor.DownloadMeta{
					Title:  "Some Track",
					URL:    "https://cdn.example.com/track.mp3",
					Format: "mp3",
				}, nil)
			})

			It("should return the download metadata", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(meta.URL).To(Equal("https://cdn.example.com/track.mp3"))

				Expect(fakeClient.DownloadCallCount()).To(Equal(1))
				_, argURL, argFormat := fakeClient.DownloadArgsForCall(0)
				Expect(argURL).To(Equal("https://youtu.be/abc123"))
				Expect(argFormat).To(Equal("mp3"))
			})
		})

		When("resolution fails", func() {
			BeforeEach(func() {
				fakeClient.DownloadReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
