package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/jose-valero/cr-tournament-finder/internal/adapters/clashroyale"
	"github.com/jose-valero/cr-tournament-finder/internal/adapters/httpapi"
	"github.com/jose-valero/cr-tournament-finder/internal/app/bootstrap"
	"github.com/jose-valero/cr-tournament-finder/internal/app/service"
	"github.com/jose-valero/cr-tournament-finder/internal/domain"
	"github.com/jose-valero/cr-tournament-finder/internal/infra/config"
)

const passwordHeader = "x-finder-password"

type finder interface {
	Run(ctx context.Context, spec domain.FilterSpec) (domain.Report, error)
}

type savedFilters interface {
	Get(ctx context.Context, profileID string) (domain.FilterSpec, error)
}

type handler struct {
	cfg     config.Config
	finder  finder
	filters savedFilters
}

func (h handler) handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	log.Printf("search hit | path=%s ip=%s params=%d", req.RawPath, req.RequestContext.HTTP.SourceIP, len(req.QueryStringParameters))

	if h.cfg.Password != "" {
		got := header(req.Headers, passwordHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.cfg.Password)) != 1 {
			return jsonResponse(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"}), nil
		}
	}

	var (
		spec domain.FilterSpec
		err  error
	)
	if len(req.QueryStringParameters) > 0 {
		spec, err = service.FilterSpecFromValues(service.ValuesFromMap(req.QueryStringParameters))
		if err != nil {
			return jsonResponse(http.StatusBadRequest, map[string]string{"error": err.Error()}), nil
		}
	} else if spec, err = h.filters.Get(ctx, h.cfg.FilterProfile); err != nil {
		log.Printf("filters get: %v", err)
		return jsonResponse(http.StatusInternalServerError, map[string]string{"error": "could not load saved filters"}), nil
	}

	rep, err := h.finder.Run(ctx, spec)
	switch {
	case errors.Is(err, clashroyale.ErrMissingAPIKey):
		return jsonResponse(http.StatusBadRequest, map[string]string{"error": err.Error()}), nil
	case err != nil:
		log.Printf("search: %v", err)
		return jsonResponse(http.StatusInternalServerError, map[string]string{"error": "search failed"}), nil
	}
	return jsonResponse(http.StatusOK, httpapi.NewSearchResponse(rep)), nil
}

// API Gateway v2 manda los headers en minúscula, pero no siempre
func header(hs map[string]string, name string) string {
	if v := hs[name]; v != "" {
		return v
	}
	for k, v := range hs {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

func jsonResponse(status int, v any) events.APIGatewayV2HTTPResponse {
	b, err := json.Marshal(v)
	if err != nil {
		status, b = http.StatusInternalServerError, []byte(`{"error":"encode"}`)
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(b),
	}
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cfg := config.Load()

	modes, err := bootstrap.Modes(cfg)
	if err != nil {
		log.Fatal(err)
	}
	filters, closeFn, err := bootstrap.NewFilters(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFn()

	h := handler{
		cfg:     cfg,
		finder:  bootstrap.NewFinder(cfg, modes, bootstrap.NewLogger(cfg, os.Stdout)),
		filters: filters,
	}
	lambda.Start(h.handle)
}
