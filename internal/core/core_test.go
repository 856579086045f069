package core_test

import (
	"context"
	"errors"

	"betawave/internal/core"
	"betawave/internal/core/fake"
	"betawave/internal/events"
	"betawave/internal/extractor"
	"betawave/internal/repository"
	tokenIssuer "betawave/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Betawave", func() {
	var (
		fakeRepo      *fake.Repository
		fakeJWT       *fake.JWTIssuer
		fakeExtractor *fake.Extractor
		fakeCache     *fake.StreamCache
		fakeEvents    *fake.EventPublisher
		fakeLogger    *zap.SugaredLogger
		ctx           context.Context

		betawave *core.Betawave
		ident    core.Identity

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeExtractor = new(fake.Extractor)
		fakeCache = new(fake.StreamCache)
		fakeEvents = new(fake.EventPublisher)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		betawave = core.NewBetawave(fakeLogger, fakeRepo, fakeJWT, fakeExtractor, fakeCache, fakeEvents)

		ident = core.Identity{
			UserID:   uuid.New().String(),
			Username: "testuser",
			Role:     repository.RoleUser,
		}

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			regMsg core.RegisterMessage
			err    error
		)

		BeforeEach(func() {
			regMsg = core.RegisterMessage{
				Username: "newuser",
				Password: "secretpass",
			}
		})

		JustBeforeEach(func() {
			err = betawave.Register(ctx, regMsg)
		})

		When("registration succeeds", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{
					ID:       uuid.New().String(),
					Username: regMsg.Username,
				}, nil)
			})

			It("should create the user with a hashed password", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, argUsername, argHash, argEmail, argRole := fakeRepo.CreateUserArgsForCall(0)
				Expect(argUsername).To(Equal(regMsg.Username))
				Expect(argEmail).To(BeNil())
				Expect(argRole).To(Equal(repository.RoleUser))
				Expect(bcrypt.CompareHashAndPassword([]byte(argHash), []byte(regMsg.Password))).To(Succeed())
			})

			It("should publish a registration event", func() {
				Expect(fakeEvents.PublishCallCount()).To(Equal(1))
				_, event := fakeEvents.PublishArgsForCall(0)
				Expect(event.Type).To(Equal(events.EventTypeUserRegistered))
			})
		})

		When("username is already taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrDuplicateUser)
			})

			It("should return user exists error", func() {
				Expect(err).To(MatchError(core.ErrUserExists))
			})
		})

		When("creating the user fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			userId         string
			tokenInfo      tokenIssuer.TokenInfo
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.New().String()
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}

			tokenInfo = tokenIssuer.TokenInfo{
				UserName:   authMsg.Username,
				Subject:    userId,
				Role:       repository.RoleUser,
				Expiration: 24,
			}
		})

		JustBeforeEach(func() {
			token, err = betawave.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByNameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
					Role:         repository.RoleUser,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeRepo.GetUserByNameCallCount()).To(Equal(1))
				_, argUsername := fakeRepo.GetUserByNameArgsForCall(0)
				Expect(argUsername).To(Equal(authMsg.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenInfo))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				argSign := fakeJWT.SignArgsForCall(0)
				Expect(argSign).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByNameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByNameReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByNameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("IdentityFromToken", func() {
		var (
			resolved core.Identity
			err      error
		)

		JustBeforeEach(func() {
			resolved, err = betawave.IdentityFromToken("some.token")
		})

		When("token is valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub":      "user123",
					"username": "testuser",
					"role":     repository.RoleAdmin,
				}, nil)
			})

			It("should resolve the caller identity", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(resolved.UserID).To(Equal("user123"))
				Expect(resolved.Username).To(Equal("testuser"))
				Expect(resolved.IsAdmin()).To(BeTrue())
			})
		})

		When("token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should return validation error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("token has no subject claim", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"username": "testuser"}, nil)
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("AddSong", func() {
		var (
			addMsg core.AddSongMessage
			record core.SongRecord
			err    error
		)

		BeforeEach(func() {
			addMsg = core.AddSongMessage{
				Name:   "Bohemian Rhapsody",
				Artist: "Queen",
				URL:    "https://www.youtube.com/watch?v=fJ9rUzIMcZQ",
			}
		})

		JustBeforeEach(func() {
			record, err = betawave.AddSong(ctx, ident, addMsg)
		})

		When("name and artist are provided", func() {
			It("should store the song without consulting the extractor", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Name).To(Equal(addMsg.Name))
				Expect(record.Artist).To(Equal(addMsg.Artist))

				Expect(fakeExtractor.ResolveTrackCallCount()).To(Equal(0))
				Expect(fakeRepo.CreateSongCallCount()).To(Equal(1))
				_, argSong := fakeRepo.CreateSongArgsForCall(0)
				Expect(argSong.UserID).To(Equal(ident.UserID))
				Expect(argSong.URL).To(Equal(addMsg.URL))
			})

			It("should publish a song added event", func() {
				Expect(fakeEvents.PublishCallCount()).To(Equal(1))
				_, event := fakeEvents.PublishArgsForCall(0)
				Expect(event.Type).To(Equal(events.EventTypeSongAdded))
				Expect(event.UserID).To(Equal(ident.UserID))
			})
		})

		When("name is missing", func() {
			BeforeEach(func() {
				addMsg.Name = ""
				addMsg.Artist = ""
				fakeExtractor.ResolveTrackReturns(extractor.Track{
					Name:   "Extracted Title",
					Artist: "Extracted Artist",
				}, nil)
			})

			It("should resolve name and artist via the extractor", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Name).To(Equal("Extracted Title"))
				Expect(record.Artist).To(Equal("Extracted Artist"))

				Expect(fakeExtractor.ResolveTrackCallCount()).To(Equal(1))
				_, argURL := fakeExtractor.ResolveTrackArgsForCall(0)
				Expect(argURL).To(Equal(addMsg.URL))
			})
		})

		When("extractor finds no title", func() {
			BeforeEach(func() {
				addMsg.Name = ""
				fakeExtractor.ResolveTrackReturns(extractor.Track{}, extractor.ErrNoTitle)
			})

			It("should return missing title error", func() {
				Expect(err).To(MatchError(core.ErrMissingTitle))
			})
		})

		When("song is already in the library", func() {
			BeforeEach(func() {
				fakeRepo.CreateSongReturns(repository.ErrDuplicateSong)
			})

			It("should return song exists error", func() {
				Expect(err).To(MatchError(core.ErrSongExists))
				Expect(fakeEvents.PublishCallCount()).To(Equal(0))
			})
		})
	})

	Describe("ResolveStream", func() {
		var (
			songID uint
			info   core.StreamInfo
			err    error
		)

		BeforeEach(func() {
			songID = 42
			fakeRepo.GetSongURLReturns("https://youtu.be/abc123", nil)
		})

		JustBeforeEach(func() {
			info, err = betawave.ResolveStream(ctx, ident, songID)
		})

		When("stream url is cached", func() {
			BeforeEach(func() {
				fakeCache.GetReturns("https://cdn.example.com/cached.m4a", nil)
			})

			It("should return the cached url without extraction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(info.StreamURL).To(Equal("https://cdn.example.com/cached.m4a"))
				Expect(info.SongID).To(Equal(songID))
				Expect(fakeExtractor.StreamURLCallCount()).To(Equal(0))
			})
		})

		When("stream url is not cached", func() {
			BeforeEach(func() {
				fakeCache.GetReturns("", nil)
				fakeExtractor.StreamURLReturns("https://cdn.example.com/fresh.m4a", nil)
			})

			It("should extract and cache the stream url", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(info.StreamURL).To(Equal("https://cdn.example.com/fresh.m4a"))

				Expect(fakeExtractor.StreamURLCallCount()).To(Equal(1))
				Expect(fakeCache.SetCallCount()).To(Equal(1))
				_, argSource, argStream := fakeCache.SetArgsForCall(0)
				Expect(argSource).To(Equal("https://youtu.be/abc123"))
				Expect(argStream).To(Equal("https://cdn.example.com/fresh.m4a"))
			})
		})

		When("cache lookup fails", func() {
			BeforeEach(func() {
				fakeCache.GetReturns("", fakeErr)
				fakeExtractor.StreamURLReturns("https://cdn.example.com/fresh.m4a", nil)
			})

			It("should fall through to extraction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(info.StreamURL).To(Equal("https://cdn.example.com/fresh.m4a"))
			})
		})

		When("song does not exist for the caller", func() {
			BeforeEach(func() {
				fakeRepo.GetSongURLReturns("", repository.ErrSongNotFound)
			})

			It("should return song not found error", func() {
				Expect(err).To(MatchError(core.ErrSongNotFound))
			})
		})

		When("extraction fails", func() {
			BeforeEach(func() {
				fakeCache.GetReturns("", nil)
				fakeExtractor.StreamURLReturns("", fakeErr)
			})

			It("should return the error with the source url for fallback", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(info.SourceURL).To(Equal("https://youtu.be/abc123"))
				Expect(info.StreamURL).To(BeEmpty())
			})
		})
	})

	Describe("Download", func() {
		var (
			songID uint
			format string
			info   core.DownloadInfo
			err    error
		)

		BeforeEach(func() {
			songID = 42
			format = "mp3"
			fakeRepo.GetSongURLReturns("https://youtu.be/abc123", nil)
		})

		JustBeforeEach(func() {
			info, err = betawave.Download(ctx, ident, songID, format)
		})

		When("format is supported", func() {
			BeforeEach(func() {
				fakeExtractor.DownloadLinkReturns(extractor.DownloadMeta{
					Title:  "Some Track",
					URL:    "https://cdn.example.com/track.mp3",
					Format: "mp3",
				}, nil)
			})

			It("should return the download link", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(info.URL).To(Equal("https://cdn.example.com/track.mp3"))
				Expect(info.Format).To(Equal("mp3"))

				Expect(fakeExtractor.DownloadLinkCallCount()).To(Equal(1))
				_, argURL, argFormat := fakeExtractor.DownloadLinkArgsForCall(0)
				Expect(argURL).To(Equal("https://youtu.be/abc123"))
				Expect(argFormat).To(Equal("mp3"))
			})
		})

		When("format is empty", func() {
			BeforeEach(func() {
				format = ""
				fakeExtractor.DownloadLinkReturns(extractor.DownloadMeta{Format: "mp3"}, nil)
			})

			It("should default to mp3", func() {
				Expect(err).NotTo(HaveOccurred())
				_, _, argFormat := fakeExtractor.DownloadLinkArgsForCall(0)
				Expect(argFormat).To(Equal("mp3"))
			})
		})

		When("format is not supported", func() {
			BeforeEach(func() {
				format = "flac"
			})

			It("should return invalid format error", func() {
				Expect(err).To(MatchError(core.ErrInvalidFormat))
				Expect(fakeRepo.GetSongURLCallCount()).To(Equal(0))
			})
		})

		When("song does not exist for the caller", func() {
			BeforeEach(func() {
				fakeRepo.GetSongURLReturns("", repository.ErrSongNotFound)
			})

			It("should return song not found error", func() {
				Expect(err).To(MatchError(core.ErrSongNotFound))
			})
		})
	})

	Describe("DeleteSong", func() {
		var (
			songID uint
			err    error
		)

		BeforeEach(func() {
			songID = 42
		})

		JustBeforeEach(func() {
			err = betawave.DeleteSong(ctx, ident, songID)
		})

		When("the caller owns the song", func() {
			BeforeEach(func() {
				fakeRepo.GetSongURLReturns("https://www.youtube.com/watch?v=dQw4w9WgXcQ", nil)
			})

			It("should delete and publish an event", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.DeleteSongCallCount()).To(Equal(1))
				_, argSongID, argUserID := fakeRepo.DeleteSongArgsForCall(0)
				Expect(argSongID).To(Equal(songID))
				Expect(argUserID).To(Equal(ident.UserID))

				Expect(fakeEvents.PublishCallCount()).To(Equal(1))
				_, event := fakeEvents.PublishArgsForCall(0)
				Expect(event.Type).To(Equal(events.EventTypeSongDeleted))
			})

			It("should drop the cached stream for the song", func() {
				Expect(fakeCache.InvalidateCallCount()).To(Equal(1))
				_, sourceURL := fakeCache.InvalidateArgsForCall(0)
				Expect(sourceURL).To(Equal("https://www.youtube.com/watch?v=dQw4w9WgXcQ"))
			})
		})

		When("the song is not in the caller's library", func() {
			BeforeEach(func() {
				fakeRepo.GetSongURLReturns("", repository.ErrSongNotFound)
			})

			It("should return song not found error", func() {
				Expect(err).To(MatchError(core.ErrSongNotFound))
				Expect(fakeRepo.DeleteSongCallCount()).To(Equal(0))
				Expect(fakeEvents.PublishCallCount()).To(Equal(0))
			})
		})

		When("the delete fails after the lookup", func() {
			BeforeEach(func() {
				fakeRepo.DeleteSongReturns(repository.ErrSongNotFound)
			})

			It("should return song not found error", func() {
				Expect(err).To(MatchError(core.ErrSongNotFound))
				Expect(fakeEvents.PublishCallCount()).To(Equal(0))
			})
		})
	})

	Describe("ToggleFavorite", func() {
		var (
			songID uint
			state  bool
			err    error
		)

		BeforeEach(func() {
			songID = 42
			fakeRepo.SongExistsReturns(true, nil)
		})

		JustBeforeEach(func() {
			state, err = betawave.ToggleFavorite(ctx, ident, songID)
		})

		When("the song is not yet a favorite", func() {
			BeforeEach(func() {
				fakeRepo.IsFavoriteReturns(false, nil)
			})

			It("should add the favorite and report true", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(state).To(BeTrue())

				Expect(fakeRepo.AddFavoriteCallCount()).To(Equal(1))
				_, argUserID, argSongID := fakeRepo.AddFavoriteArgsForCall(0)
				Expect(argUserID).To(Equal(ident.UserID))
				Expect(argSongID).To(Equal(songID))
			})
		})

		When("the song is already a favorite", func() {
			BeforeEach(func() {
				fakeRepo.IsFavoriteReturns(true, nil)
				fakeRepo.RemoveFavoriteReturns(true, nil)
			})

			It("should remove the favorite and report false", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(state).To(BeFalse())
				Expect(fakeRepo.RemoveFavoriteCallCount()).To(Equal(1))
				Expect(fakeRepo.AddFavoriteCallCount()).To(Equal(0))
			})
		})

		When("a concurrent toggle wins the insert", func() {
			BeforeEach(func() {
				fakeRepo.IsFavoriteReturns(false, nil)
				fakeRepo.AddFavoriteReturns(repository.ErrDuplicateFavorite)
			})

			It("should still report the song as favorite", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(state).To(BeTrue())
			})
		})

		When("the song does not exist", func() {
			BeforeEach(func() {
				fakeRepo.SongExistsReturns(false, nil)
			})

			It("should return song not found error", func() {
				Expect(err).To(MatchError(core.ErrSongNotFound))
				Expect(fakeRepo.IsFavoriteCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetConfig", func() {
		var (
			cfg core.ConfigRecord
			err error
		)

		JustBeforeEach(func() {
			cfg, err = betawave.GetConfig(ctx, ident)
		})

		When("the user has saved preferences", func() {
			BeforeEach(func() {
				fakeRepo.GetUserConfigReturns(repository.UserConfig{
					UserID:        ident.UserID,
					DarkMode:      true,
					DefaultVolume: 80,
				}, nil)
			})

			It("should return them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.DarkMode).To(BeTrue())
				Expect(cfg.DefaultVolume).To(Equal(80))
			})
		})

		When("the user has no saved preferences", func() {
			BeforeEach(func() {
				fakeRepo.GetUserConfigReturns(repository.UserConfig{}, repository.ErrConfigNotFound)
			})

			It("should return defaults", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.DarkMode).To(BeFalse())
				Expect(cfg.DefaultVolume).To(Equal(50))
			})
		})
	})

	Describe("SaveConfig", func() {
		It("should persist the caller's preferences", func() {
			err := betawave.SaveConfig(ctx, ident, core.ConfigRecord{DarkMode: true, DefaultVolume: 30})
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeRepo.SaveUserConfigCallCount()).To(Equal(1))
			_, argCfg := fakeRepo.SaveUserConfigArgsForCall(0)
			Expect(argCfg.UserID).To(Equal(ident.UserID))
			Expect(argCfg.DarkMode).To(BeTrue())
			Expect(argCfg.DefaultVolume).To(Equal(30))
		})
	})

	Describe("ListUsers", func() {
		var (
			users []core.UserRecord
			err   error
		)

		JustBeforeEach(func() {
			users, err = betawave.ListUsers(ctx, ident)
		})

		When("the caller is an admin", func() {
			BeforeEach(func() {
				ident.Role = repository.RoleAdmin
				fakeRepo.ListUsersReturns([]repository.User{
					{ID: "u1", Username: "admin", Role: repository.RoleAdmin},
					{ID: "u2", Username: "testuser", Role: repository.RoleUser},
				}, nil)
			})

			It("should return all users", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(users).To(HaveLen(2))
				Expect(users[0].Username).To(Equal("admin"))
			})
		})

		When("the caller is not an admin", func() {
			It("should return not authorized error", func() {
				Expect(err).To(MatchError(core.ErrNotAuthorized))
				Expect(fakeRepo.ListUsersCallCount()).To(Equal(0))
			})
		})
	})

	Describe("DeleteUser", func() {
		var (
			targetID string
			err      error
		)

		BeforeEach(func() {
			targetID = uuid.New().String()
			ident.Role = repository.RoleAdmin
			fakeRepo.GetUserByIDReturns(repository.User{
				ID:       targetID,
				Username: "doomed",
				Role:     repository.RoleUser,
			}, nil)
		})

		JustBeforeEach(func() {
			err = betawave.DeleteUser(ctx, ident, targetID)
		})

		When("the caller is an admin and the target exists", func() {
			It("should delete the user and publish an event", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.DeleteUserCallCount()).To(Equal(1))
				_, argUserID := fakeRepo.DeleteUserArgsForCall(0)
				Expect(argUserID).To(Equal(targetID))

				Expect(fakeEvents.PublishCallCount()).To(Equal(1))
				_, event := fakeEvents.PublishArgsForCall(0)
				Expect(event.Type).To(Equal(events.EventTypeUserDeleted))
			})
		})

		When("the caller is not an admin", func() {
			BeforeEach(func() {
				ident.Role = repository.RoleUser
			})

			It("should return not authorized error", func() {
				Expect(err).To(MatchError(core.ErrNotAuthorized))
				Expect(fakeRepo.DeleteUserCallCount()).To(Equal(0))
			})
		})

		When("the target does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("the target is an admin account", func() {
			BeforeEach(func() {
				fakeRepo.DeleteUserReturns(repository.ErrAdminProtected)
			})

			It("should return admin protected error", func() {
				Expect(err).To(MatchError(core.ErrAdminProtected))
			})
		})
	})
})
