package main

import (
	"context"
	"log/slog"
	"os"

	"caftan/config"
	"caftan/internal/delivery"
	"caftan/internal/delivery/http"
	"caftan/internal/delivery/http/middleware"
	"caftan/internal/delivery/http/router/handler"
	"caftan/internal/domain/repository"
	"caftan/internal/domain/service"
	"caftan/internal/infra/auth"
	"caftan/internal/infra/cms"
	"caftan/internal/infra/content"
	logs "caftan/internal/infra/log"
	"caftan/internal/infra/staticdata"
	"caftan/internal/infra/webhook"
	"caftan/internal/usecase"
	"caftan/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newCMSClient,
	)
}

// newCMSClient creates the remote store client. A nil CMS config yields
// an unconfigured client, which every consumer treats as "use fallback".
func newCMSClient(cfg *config.Config, logger *slog.Logger) *cms.Client {
	return cms.NewClient(cfg.CMS, logger)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			staticdata.New,
			newArticleRepository,
		),
	)
}

func newArticleRepository(cfg *config.Config) repository.ArticleRepository {
	return content.NewStore(cfg.Content.Dir, cfg.Content.Locales)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSessionVerifier,
			newRemoteSource,
			newDocumentCreator,
			newRecordMapper,
			cms.NewStoreSink,
			newWebhookForwarder,
		),
	)
}

func newRemoteSource(client *cms.Client) service.RemoteSource {
	return client
}

func newDocumentCreator(client *cms.Client) service.DocumentCreator {
	return client
}

func newRecordMapper(client *cms.Client) service.RecordMapper {
	return cms.NewMapper(client)
}

func newWebhookForwarder(cfg *config.Config) *webhook.Forwarder {
	return webhook.NewForwarder(cfg.Webhooks)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			newContentUsecase,
			newSubmissionUsecase,
		),
	)
}

func newContentUsecase(articles repository.ArticleRepository, cfg *config.Config) usecase.ContentUsecase {
	return impl.NewContentService(articles, cfg.Content.DefaultLocale)
}

func newSubmissionUsecase(store *cms.StoreSink, hook *webhook.Forwarder, source service.RemoteSource, logger *slog.Logger) usecase.SubmissionUsecase {
	return impl.NewSubmissionService(store, hook, source, logger)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAccessGate,
			middleware.NewRequestIDMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewContentHandler,
			handler.NewContactHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
