package extractor_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"betawave/internal/extractor"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("HTTPClient", func() {
	var (
		server *httptest.Server
		client *extractor.HTTPClient
		ctx    context.Context
	)

	AfterEach(func() {
		server.Close()
	})

	Describe("Extract", func() {
		When("the sidecar responds with metadata", func() {
			BeforeEach(func() {
				server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					Expect(r.URL.Path).To(Equal("/extract"))
					Expect(r.URL.Query().Get("url")).To(Equal("https://youtu.be/abc?t=1"))

					w.Header().Set("Content-Type", "application/json")
					_, _ = w.Write([]byte(`{
						"title": "Around the World",
						"artist": "Daft Punk",
						"url": "https://cdn.example.com/stream.m4a"
					}`))
				}))
				client = extractor.NewHTTPClient(server.URL)
				ctx = context.Background()
			})

			It("should decode the track metadata", func() {
				meta, err := client.Extract(ctx, "https://youtu.be/abc?t=1")
				Expect(err).NotTo(HaveOccurred())
				Expect(meta.Title).To(Equal("Around the World"))
				Expect(meta.Artist).To(Equal("Daft Punk"))
				Expect(meta.StreamURL).To(Equal("https://cdn.example.com/stream.m4a"))
			})
		})

		When("the sidecar reports a failure with a detail message", func() {
			BeforeEach(func() {
				server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusBadGateway)
					_, _ = w.Write([]byte(`{"detail": "video unavailable"}`))
				}))
				client = extractor.NewHTTPClient(server.URL)
				ctx = context.Background()
			})

			It("should surface the status and detail", func() {
				_, err := client.Extract(ctx, "https://youtu.be/gone")
				Expect(err).To(MatchError(ContainSubstring("502")))
				Expect(err).To(MatchError(ContainSubstring("video unavailable")))
			})
		})
	})

	Describe("Download", func() {
		BeforeEach(func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/download"))
				Expect(r.URL.Query().Get("format")).To(Equal("mp3"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"title": "Around the World",
					"url": "https://cdn.example.com/track.mp3",
					"format": "mp3"
				}`))
			}))
			client = extractor.NewHTTPClient(server.URL)
			ctx = context.Background()
		})

		It("should decode the download metadata", func() {
			meta, err := client.Download(ctx, "https://youtu.be/abc", "mp3")
			Expect(err).NotTo(HaveOccurred())
			Expect(meta.URL).To(Equal("https://cdn.example.com/track.mp3"))
			Expect(meta.Format).To(Equal("mp3"))
		})
	})
})
