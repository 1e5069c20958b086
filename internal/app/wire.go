//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"parcelhub/internal/gateway/identity"
	stripeGateway "parcelhub/internal/gateway/stripe"
	checkout_session_post "parcelhub/internal/handlers/rest/checkout_session_post"
	parcel_post "parcelhub/internal/handlers/rest/parcel_post"
	parcel_status_patch "parcelhub/internal/handlers/rest/parcel_status_patch"
	parcels_get "parcelhub/internal/handlers/rest/parcels_get"
	payment_success_patch "parcelhub/internal/handlers/rest/payment_success_patch"
	payments_get "parcelhub/internal/handlers/rest/payments_get"
	rider_delivery_report_get "parcelhub/internal/handlers/rest/rider_delivery_report_get"
	rider_patch "parcelhub/internal/handlers/rest/rider_patch"
	rider_post "parcelhub/internal/handlers/rest/rider_post"
	riders_get "parcelhub/internal/handlers/rest/riders_get"
	tracking_logs_get "parcelhub/internal/handlers/rest/tracking_logs_get"
	"parcelhub/internal/handlers/tasks/stalled_parcels"
	"parcelhub/internal/pkg/config"
	"parcelhub/internal/pkg/factory/tracking_id"

	parcelRepo "parcelhub/internal/repository/parcel"
	paymentRepo "parcelhub/internal/repository/payment"
	riderRepo "parcelhub/internal/repository/rider"
	trackingRepo "parcelhub/internal/repository/tracking"
	userRepo "parcelhub/internal/repository/user"
	parcelService "parcelhub/internal/service/parcel"
	paymentService "parcelhub/internal/service/payment"
	riderService "parcelhub/internal/service/rider"
	trackingService "parcelhub/internal/service/tracking"

	"parcelhub/pkg/background"
	"parcelhub/pkg/logger"
	"parcelhub/pkg/querier"
	"parcelhub/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StalledCheckInterval time.Duration
	StalledMaxAge        time.Duration
)

type Application struct {
	ServiceParcel     ServiceParcel
	ServiceRider      ServiceRider
	ServicePayment    ServicePayment
	ServiceTracking   ServiceTracking
	TokenVerifier     *identity.Verifier
	Users             *userRepo.Repository
	BackgroundWorkers *background.Worker
}

type ServiceParcel interface {
	parcel_post.Service
	parcels_get.Service
	parcel_status_patch.Service
}

type ServiceRider interface {
	rider_post.Service
	riders_get.Service
	rider_patch.Service
	rider_delivery_report_get.Service
}

type ServicePayment interface {
	checkout_session_post.Service
	payment_success_patch.Service
	payments_get.Service
}

type ServiceTracking interface {
	tracking_logs_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStalledCheckInterval,
		provideStalledMaxAge,

		provideParcelRepository,
		provideRiderRepository,
		providePaymentRepository,
		provideTrackingRepository,
		provideUserRepository,

		tracking_id.New,
		provideServiceTracking,
		provideServiceRider,
		provideServiceParcel,
		provideStripeGateway,
		provideServicePayment,
		provideTokenVerifier,

		provideStalledParcelsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceRider), new(*riderService.Rider)),
		wire.Bind(new(ServicePayment), new(*paymentService.Payment)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(riderService.Repository), new(*riderRepo.Repository)),
		wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),
		wire.Bind(new(trackingService.Repository), new(*trackingRepo.Repository)),
		wire.Bind(new(riderService.UserRepository), new(*userRepo.Repository)),

		wire.Bind(new(parcelService.RiderService), new(*riderService.Rider)),
		wire.Bind(new(parcelService.TrackingService), new(*trackingService.Tracking)),
		wire.Bind(new(parcelService.TrackingIDFactory), new(*tracking_id.TrackingIDFactory)),
		wire.Bind(new(paymentService.ParcelService), new(*parcelService.Parcel)),
		wire.Bind(new(paymentService.TrackingService), new(*trackingService.Tracking)),
		wire.Bind(new(paymentService.Gateway), new(*stripeGateway.Gateway)),

		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
		wire.Bind(new(riderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(stalled_parcels.Service), new(*parcelService.Parcel)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ParcelService *parcelService.Parcel
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-parcel-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideParcelRepository,
		provideRiderRepository,
		provideTrackingRepository,
		provideUserRepository,

		tracking_id.New,
		provideServiceTracking,
		provideServiceRider,
		provideServiceParcel,

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(riderService.Repository), new(*riderRepo.Repository)),
		wire.Bind(new(trackingService.Repository), new(*trackingRepo.Repository)),
		wire.Bind(new(riderService.UserRepository), new(*userRepo.Repository)),

		wire.Bind(new(parcelService.RiderService), new(*riderService.Rider)),
		wire.Bind(new(parcelService.TrackingService), new(*trackingService.Tracking)),
		wire.Bind(new(parcelService.TrackingIDFactory), new(*tracking_id.TrackingIDFactory)),

		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
		wire.Bind(new(riderService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideRiderRepository(querier *querier.Querier) *riderRepo.Repository {
	return riderRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideServiceTracking(repository trackingService.Repository) *trackingService.Tracking {
	return trackingService.New(repository)
}

func provideServiceRider(
	repository riderService.Repository,
	userRepository riderService.UserRepository,
	txManager riderService.TxManager,
) *riderService.Rider {
	return riderService.New(repository, userRepository, txManager)
}

func provideServiceParcel(
	repository parcelService.Repository,
	riders parcelService.RiderService,
	trackings parcelService.TrackingService,
	trackingFactory parcelService.TrackingIDFactory,
	txManager parcelService.TxManager,
) *parcelService.Parcel {
	return parcelService.New(repository, riders, trackings, trackingFactory, txManager)
}

func provideStripeGateway(cfg *config.Config) *stripeGateway.Gateway {
	client := &http.Client{Timeout: 10 * time.Second}
	return stripeGateway.New(client, cfg.Stripe.BaseURL, cfg.Stripe.SecretKey)
}

func provideServicePayment(
	repository paymentService.Repository,
	parcels paymentService.ParcelService,
	trackings paymentService.TrackingService,
	gateway paymentService.Gateway,
	txManager paymentService.TxManager,
) *paymentService.Payment {
	return paymentService.New(repository, parcels, trackings, gateway, txManager)
}

func provideTokenVerifier(cfg *config.Config) *identity.Verifier {
	return identity.New(cfg.Auth.JWTSecret)
}

func provideStalledCheckInterval(cfg *config.Config) StalledCheckInterval {
	return StalledCheckInterval(cfg.Tasks.StalledParcelsCheckInterval)
}

func provideStalledMaxAge(cfg *config.Config) StalledMaxAge {
	return StalledMaxAge(cfg.Tasks.StalledParcelsMaxAge)
}

func provideStalledParcelsTask(
	log logger.Logger,
	parcels stalled_parcels.Service,
	interval StalledCheckInterval,
	maxAge StalledMaxAge,
) *stalled_parcels.StalledParcels {
	return stalled_parcels.NewStalledParcels(log, parcels, time.Duration(interval), time.Duration(maxAge))
}

func provideTaskList(
	stalledParcelsTask *stalled_parcels.StalledParcels,
) []background.Task {
	return []background.Task{
		stalledParcelsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
