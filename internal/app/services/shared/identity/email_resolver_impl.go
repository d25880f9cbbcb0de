package identity

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

type emailResolver struct {
	Provider    contracts.IdentityProvider
	Cache       contracts.RedisRepository
	CacheTTL    time.Duration
	Limiter     *rate.Limiter
	Concurrency int
	Log         *zap.Logger
}

// NewEmailResolver resolves owner emails through the provider's admin API.
// cache may be nil, in which case every listing asks the provider.
func NewEmailResolver(
	provider contracts.IdentityProvider,
	cache contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.IdentityResolver {
	concurrency := internalConfig.Identity.LookupConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	limit := rate.Inf
	if internalConfig.Identity.LookupRatePerSecond > 0 {
		limit = rate.Limit(internalConfig.Identity.LookupRatePerSecond)
	}
	burst := internalConfig.Identity.LookupBurst
	if burst < 1 {
		burst = 1
	}

	return &emailResolver{
		Provider:    provider,
		Cache:       cache,
		CacheTTL:    time.Duration(internalConfig.Identity.EmailCacheTTLInMinutes) * time.Minute,
		Limiter:     rate.NewLimiter(limit, burst),
		Concurrency: concurrency,
		Log:         logger,
	}
}

func (r *emailResolver) ResolveEmails(ctx context.Context, userIDs []string) map[string]string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("emailResolver.ResolveEmails called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingOwnerCountKey, len(userIDs)),
	)

	emails := make(map[string]string, len(userIDs))
	pending := make([]string, 0, len(userIDs))
	seen := make(map[string]struct{}, len(userIDs))
	for _, userID := range userIDs {
		if userID == "" {
			continue
		}
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}
		pending = append(pending, userID)
	}

	pending = r.fillFromCache(ctx, pending, emails)
	cacheHits := len(emails)

	var mu sync.Mutex
	var group errgroup.Group
	group.SetLimit(r.Concurrency)
	for _, userID := range pending {
		userID := userID
		group.Go(func() error {
			if err := r.Limiter.Wait(ctx); err != nil {
				return nil
			}

			user, err := r.Provider.GetUserByID(ctx, userID)
			if err != nil {
				r.Log.Warn("emailResolver.ResolveEmails error looking up user",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingUserIDKey, userID),
					zap.Error(err),
				)
				return nil
			}
			if user == nil || user.Email == "" {
				return nil
			}

			mu.Lock()
			emails[userID] = user.Email
			mu.Unlock()

			r.storeInCache(ctx, userID, user.Email)
			return nil
		})
	}
	group.Wait()

	r.Log.Info("emailResolver.ResolveEmails succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingOwnerCountKey, len(emails)),
		zap.Int(constvars.LoggingCacheHitCountKey, cacheHits),
	)
	return emails
}

// fillFromCache moves cached emails into emails and returns the ids still
// unresolved.
func (r *emailResolver) fillFromCache(ctx context.Context, userIDs []string, emails map[string]string) []string {
	if r.Cache == nil || len(userIDs) == 0 {
		return userIDs
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	keys := make([]string, len(userIDs))
	for i, userID := range userIDs {
		keys[i] = cacheKey(userID)
	}

	cached, err := r.Cache.GetMany(ctx, keys)
	if err != nil {
		r.Log.Warn("emailResolver.fillFromCache error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return userIDs
	}

	misses := make([]string, 0, len(userIDs))
	for i, userID := range userIDs {
		raw, ok := cached[keys[i]]
		var email string
		if ok && json.Unmarshal([]byte(raw), &email) == nil && email != "" {
			emails[userID] = email
			continue
		}
		misses = append(misses, userID)
	}
	return misses
}

func (r *emailResolver) storeInCache(ctx context.Context, userID, email string) {
	if r.Cache == nil || r.CacheTTL <= 0 {
		return
	}
	err := r.Cache.Set(ctx, cacheKey(userID), email, r.CacheTTL)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		r.Log.Warn("emailResolver.storeInCache error writing cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
	}
}

func cacheKey(userID string) string {
	return fmt.Sprintf(constvars.RedisKeyUserEmailFormat, userID)
}
