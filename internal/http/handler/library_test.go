package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"betawave/internal/core"
	"betawave/internal/http/handler"
	"betawave/internal/http/handler/fake"
	"betawave/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("LibraryHandler", func() {
	var (
		lh            *handler.LibraryHandler
		fakeService   *fake.MusicService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		ident         core.Identity
		fakeErr       error
	)

	authorized := func(r *http.Request) *http.Request {
		return r.WithContext(context.WithValue(r.Context(), middleware.IdentityKey, ident))
	}

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.MusicService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		ident = core.Identity{
			UserID:   "user123",
			Username: "testuser",
			Role:     "user",
		}

		w = httptest.NewRecorder()
		lh = handler.NewLibraryHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleRegister", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"newuser","password":"secretpass"}`)
			req = httptest.NewRequest("POST", "/api/register", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			lh.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			It("should return status 201", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(fakeService.RegisterCallCount()).To(Equal(1))
				_, argMsg := fakeService.RegisterArgsForCall(0)
				Expect(argMsg.Username).To(Equal("newuser"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/api/register",
					strings.NewReader(`{"username":"x","password":"short"}`))
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.ErrUserExists)
			})

			It("should return status 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrUserExists.Error()))
			})
		})
	})

	Describe("HandleLogin", func() {
		var response map[string]string

		BeforeEach(func() {
			fakeService.AuthenticateReturns("signed.token", nil)

			body := strings.NewReader(`{"username":"testuser","password":"testpass"}`)
			req = httptest.NewRequest("POST", "/api/login", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			lh.HandleLogin(w, req)
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["token"]).To(Equal("signed.token"))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(1))
			})
		})

		When("credentials are wrong", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the user is unknown", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrUserNotFound)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", fakeErr)
			})

			It("should return status 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetSongs", func() {
		BeforeEach(func() {
			req = authorized(httptest.NewRequest("GET", "/api/songs", nil))
		})

		JustBeforeEach(func() {
			lh.HandleGetSongs(w, req)
		})

		When("the library has songs", func() {
			BeforeEach(func() {
				fakeService.ListSongsReturns([]core.SongRecord{
					{ID: 1, Name: "Bohemian Rhapsody", Artist: "Queen"},
				}, nil)
			})

			It("should return the songs", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Bohemian Rhapsody"))

				_, argIdent := fakeService.ListSongsArgsForCall(0)
				Expect(argIdent).To(Equal(ident))
			})
		})

		When("no identity is on the request", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/songs", nil)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.ListSongsCallCount()).To(Equal(0))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.ListSongsReturns(nil, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleSearchSongs", func() {
		BeforeEach(func() {
			req = authorized(httptest.NewRequest("GET", "/api/search?term=queen", nil))
			fakeService.SearchSongsReturns([]core.SongRecord{{ID: 1, Name: "Bohemian Rhapsody"}}, nil)
		})

		It("should pass the search term along", func() {
			lh.HandleSearchSongs(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeService.SearchSongsCallCount()).To(Equal(1))
			_, _, argTerm := fakeService.SearchSongsArgsForCall(0)
			Expect(argTerm).To(Equal("queen"))
		})
	})

	Describe("HandleAddSong", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"song_name":"Around the World","song_artist":"Daft Punk","song_url":"https://www.youtube.com/watch?v=dwDns8x3Jb4"}`)
			req = authorized(httptest.NewRequest("POST", "/api/add_song", body))
		})

		JustBeforeEach(func() {
			lh.HandleAddSong(w, req)
		})

		When("the song is added", func() {
			BeforeEach(func() {
				fakeService.AddSongReturns(core.SongRecord{ID: 7, Name: "Around the World"}, nil)
			})

			It("should return success and the song id", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["success"]).To(BeTrue())
				Expect(response["song_id"]).To(BeNumerically("==", 7))
			})
		})

		When("the url is not a youtube url", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"song_url":"https://vimeo.com/12345"}`)
				req = authorized(httptest.NewRequest("POST", "/api/add_song", body))
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AddSongCallCount()).To(Equal(0))
			})
		})

		When("no track title can be determined", func() {
			BeforeEach(func() {
				fakeService.AddSongReturns(core.SongRecord{}, core.ErrMissingTitle)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrMissingTitle.Error()))
			})
		})

		When("the song already exists", func() {
			BeforeEach(func() {
				fakeService.AddSongReturns(core.SongRecord{}, core.ErrSongExists)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandlePlaySong", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"song_id":42}`)
			req = authorized(httptest.NewRequest("POST", "/api/play", body))
		})

		JustBeforeEach(func() {
			lh.HandlePlaySong(w, req)
		})

		When("the stream resolves", func() {
			BeforeEach(func() {
				fakeService.ResolveStreamReturns(core.StreamInfo{
					SongID:    42,
					StreamURL: "https://cdn.example.com/stream.m4a",
				}, nil)
			})

			It("should return the stream url", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["audio_stream_url"]).To(Equal("https://cdn.example.com/stream.m4a"))
				Expect(response["song_id"]).To(BeNumerically("==", 42))
			})
		})

		When("the song is not found", func() {
			BeforeEach(func() {
				fakeService.ResolveStreamReturns(core.StreamInfo{}, core.ErrSongNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("extraction fails", func() {
			BeforeEach(func() {
				fakeService.ResolveStreamReturns(core.StreamInfo{
					SongID:    42,
					SourceURL: "https://youtu.be/abc123",
				}, fakeErr)
			})

			It("should return status 500 with a fallback url", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))

				var response map[string]any
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["fallback_url"]).To(Equal("https://youtu.be/abc123"))
			})
		})

		When("the song id is missing", func() {
			BeforeEach(func() {
				req = authorized(httptest.NewRequest("POST", "/api/play", strings.NewReader(`{}`)))
			})

			It("should return status 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.ResolveStreamCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleDownloadSong", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"song_id":42,"format":"mp3"}`)
			req = authorized(httptest.NewRequest("POST", "/api/download", body))
		})

		JustBeforeEach(func() {
			lh.HandleDownloadSong(w, req)
		})

		When("the download resolves", func() {
			BeforeEach(func() {
				fakeService.DownloadReturns(core.DownloadInfo{
					Title:  "Around the World",
					URL:    "https://cdn.example.com/track.mp3",
					Format: "mp3",
				}, nil)
			})

			It("should return the download info", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("track.mp3"))
			})
		})

		When("the format is not supported", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"song_id":42,"format":"flac"}`)
				req = authorized(httptest.NewRequest("POST", "/api/download", body))
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.DownloadCallCount()).To(Equal(0))
			})
		})

		When("the song id is missing", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"format":"mp3"}`)
				req = authorized(httptest.NewRequest("POST", "/api/download", body))
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.DownloadCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleDeleteSong", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"song_id":42}`)
			req = authorized(httptest.NewRequest("POST", "/api/delete", body))
		})

		JustBeforeEach(func() {
			lh.HandleDeleteSong(w, req)
		})

		When("the song is deleted", func() {
			It("should return success", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				Expect(fakeService.DeleteSongCallCount()).To(Equal(1))
				_, _, argSongID := fakeService.DeleteSongArgsForCall(0)
				Expect(argSongID).To(Equal(uint(42)))
			})
		})

		When("the song is not in the caller's library", func() {
			BeforeEach(func() {
				fakeService.DeleteSongReturns(core.ErrSongNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleToggleFavorite", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"song_id":42}`)
			req = authorized(httptest.NewRequest("POST", "/api/toggle_favorite", body))
		})

		JustBeforeEach(func() {
			lh.HandleToggleFavorite(w, req)
		})

		When("the toggle adds a favorite", func() {
			BeforeEach(func() {
				fakeService.ToggleFavoriteReturns(true, nil)
			})

			It("should report the new state", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["is_favorite"]).To(BeTrue())
			})
		})

		When("the song does not exist", func() {
			BeforeEach(func() {
				fakeService.ToggleFavoriteReturns(false, core.ErrSongNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleGetConfig", func() {
		BeforeEach(func() {
			req = authorized(httptest.NewRequest("GET", "/get_config", nil))
			fakeService.GetConfigReturns(core.ConfigRecord{DarkMode: true, DefaultVolume: 80}, nil)
		})

		It("should return the caller's preferences", func() {
			lh.HandleGetConfig(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response["darkMode"]).To(BeTrue())
			Expect(response["defaultVolume"]).To(BeNumerically("==", 80))
		})
	})

	Describe("HandleSaveConfig", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"darkMode":true,"defaultVolume":30}`)
			req = authorized(httptest.NewRequest("POST", "/save_config", body))
		})

		JustBeforeEach(func() {
			lh.HandleSaveConfig(w, req)
		})

		When("the config is valid", func() {
			It("should persist it", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				Expect(fakeService.SaveConfigCallCount()).To(Equal(1))
				_, _, argCfg := fakeService.SaveConfigArgsForCall(0)
				Expect(argCfg.DarkMode).To(BeTrue())
				Expect(argCfg.DefaultVolume).To(Equal(30))
			})
		})

		When("the volume is out of range", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"darkMode":false,"defaultVolume":130}`)
				req = authorized(httptest.NewRequest("POST", "/save_config", body))
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.SaveConfigCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleAdminUsers", func() {
		BeforeEach(func() {
			req = authorized(httptest.NewRequest("GET", "/admin/users", nil))
		})

		JustBeforeEach(func() {
			lh.HandleAdminUsers(w, req)
		})

		When("the caller is an admin", func() {
			BeforeEach(func() {
				fakeService.ListUsersReturns([]core.UserRecord{
					{ID: "u1", Username: "admin", Role: "admin"},
				}, nil)
			})

			It("should return the users", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("admin"))
			})
		})

		When("the caller is not an admin", func() {
			BeforeEach(func() {
				fakeService.ListUsersReturns(nil, core.ErrNotAuthorized)
			})

			It("should return status 403", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})
	})

	Describe("HandleAdminDeleteUser", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"userId":"user456"}`)
			req = authorized(httptest.NewRequest("POST", "/admin/delete_user", body))
		})

		JustBeforeEach(func() {
			lh.HandleAdminDeleteUser(w, req)
		})

		When("the target is deleted", func() {
			It("should return success", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				Expect(fakeService.DeleteUserCallCount()).To(Equal(1))
				_, _, argTargetID := fakeService.DeleteUserArgsForCall(0)
				Expect(argTargetID).To(Equal("user456"))
			})
		})

		When("the target is an admin account", func() {
			BeforeEach(func() {
				fakeService.DeleteUserReturns(core.ErrAdminProtected)
			})

			It("should return status 403", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})

		When("the target does not exist", func() {
			BeforeEach(func() {
				fakeService.DeleteUserReturns(core.ErrUserNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
