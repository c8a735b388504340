package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"stockledger/config"
	"stockledger/internal/pkg/cache"
	"stockledger/internal/pkg/logger"
	"stockledger/internal/pkg/middleware"
	"stockledger/internal/scheduler"

	"stockledger/internal/api/product"
	"stockledger/internal/api/router"
	"stockledger/internal/api/stock"
	"stockledger/internal/repository/productrepo"
	"stockledger/internal/repository/stockrepo"
	"stockledger/internal/service/productservice"
	"stockledger/internal/service/stockservice"
)

func main() {
	// 0. .env é opcional: em containers as variáveis vêm do ambiente.
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado. Usando apenas o ambiente do sistema.")
	}

	// 1. Configuração e Logger
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}
	appLog := logger.New(logger.Options{Level: cfg.LogLevel, Environment: cfg.Environment})
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment, "port": cfg.Port})

	locale, err := language.Parse(cfg.CollationLocale)
	if err != nil {
		appLog.Warn("Idioma de ordenação inválido, usando coreano.", map[string]interface{}{"locale": cfg.CollationLocale})
		locale = language.Korean
	}

	// 2. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler

	// A. Catálogo e ledger em memória com os dados iniciais
	products := productrepo.SeedProducts()
	productRepo, err := productrepo.NewProductRepository(products, appLog)
	if err != nil {
		appLog.Fatal("Falha ao carregar o catálogo.", err)
	}

	stockRepo := stockrepo.NewStockRepository(time.Now, appLog)
	if err := stockRepo.Seed(productrepo.SeedStock(products, cfg.DefaultMinThreshold, time.Now())); err != nil {
		appLog.Fatal("Falha ao carregar o estoque inicial.", err)
	}
	appLog.Debug("Repositórios inicializados.", map[string]interface{}{"products": len(products)})

	// B. Serviços
	productSvc := productservice.NewService(productRepo, appLog)
	stockSvc := stockservice.NewService(productRepo, stockRepo, appLog, stockservice.Settings{
		Locale:       locale,
		DefaultActor: cfg.DefaultActor,
		RecentLimit:  cfg.RecentTransactionsLimit,
		AlertLimit:   cfg.AlertLimit,
	})

	// C. Handlers
	productHandler := product.NewHandler(productSvc, appLog)
	stockHandler := stock.NewHandler(stockSvc, appLog)

	// 3. Middlewares globais (do mais externo ao mais interno)
	mws := []func(http.Handler) http.Handler{
		middleware.RequestLogger(appLog),
	}
	if cfg.RateLimitEnabled {
		cacheClient, err := cache.NewRedisClient(cfg.RedisAddr, cfg.CacheTimeout)
		if err != nil {
			appLog.Fatal("Rate limit ativo mas o Redis está indisponível.", err)
		}
		defer cacheClient.Close()
		appLog.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
		mws = append(mws, middleware.RateLimiter(cacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod, appLog))
	}
	mws = append(mws,
		middleware.Timeout(cfg.RequestTimeout),
		middleware.Actor(cfg.DefaultActor),
	)

	// 4. Alertas agendados
	if cfg.AlertCron != "" {
		sched := scheduler.NewScheduler(cfg.AlertCron, stockSvc, cfg.AlertLimit, appLog)
		if err := sched.Start(); err != nil {
			appLog.Fatal("Falha ao iniciar o agendador de alertas.", err)
		}
		defer sched.Stop()
	}

	// 5. Servidor
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(productHandler, stockHandler, mws...),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLog.Info("Servidor ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
