package server

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gonum.org/v1/gonum/stat"

	"github.com/moodpulse/moodpulse/internal/advisor"
	"github.com/moodpulse/moodpulse/internal/domain"
	apperrors "github.com/moodpulse/moodpulse/internal/errors"
)

const defaultYear = 2024

func (s *Server) handleRegions(c echo.Context) error {
	return c.JSON(200, map[string]any{
		"regions": domain.Regions,
		"total":   len(domain.Regions),
	})
}

func (s *Server) handleSentiment(c echo.Context) error {
	region := queryDefault(c, "region", "Northeast")
	year, err := queryYear(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	if region == "all" {
		results := make(map[string][]domain.MonthlyAggregate, len(domain.Regions))
		for _, r := range domain.Regions {
			result, err := s.cache.Get(ctx, r, year)
			if err != nil {
				return apperrors.InternalError("pipeline run failed", err).WithContext("region", r)
			}
			results[r] = result.MonthlyData
		}
		return c.JSON(200, map[string]any{
			"year":    year,
			"regions": results,
			"message": fmt.Sprintf("Data for all %d regions", len(domain.Regions)),
		})
	}

	if !domain.KnownRegion(region) {
		return apperrors.NotFoundError(fmt.Sprintf("region %q not found", region)).
			WithContext("region", region).
			WithContext("available", domain.Regions)
	}

	result, err := s.cache.Get(ctx, region, year)
	if err != nil {
		return apperrors.InternalError("pipeline run failed", err).WithContext("region", region)
	}

	return c.JSON(200, map[string]any{
		"region":                      region,
		"year":                        year,
		"monthly_data":                result.MonthlyData,
		"overall_avg":                 result.OverallAvg,
		"trend_direction":             result.TrendDirection,
		"total_samples":               result.TotalSamplesProcessed,
		"feature_extractor_available": result.FeatureExtractorAvailable,
	})
}

func (s *Server) handleStats(c echo.Context) error {
	year, err := queryYear(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	avgs := make([]float64, 0, len(domain.Regions))
	totalSamples := 0
	highest, lowest := 0, 0
	for i, r := range domain.Regions {
		result, err := s.cache.Get(ctx, r, year)
		if err != nil {
			return apperrors.InternalError("pipeline run failed", err).WithContext("region", r)
		}
		avgs = append(avgs, result.OverallAvg)
		totalSamples += result.TotalSamplesProcessed
		if result.OverallAvg > avgs[highest] {
			highest = i
		}
		if result.OverallAvg < avgs[lowest] {
			lowest = i
		}
	}

	return c.JSON(200, map[string]any{
		"year":                    year,
		"regions_monitored":       len(domain.Regions),
		"national_avg_sentiment":  round2(stat.Mean(avgs, nil)),
		"highest_region":          domain.Regions[highest],
		"lowest_region":           domain.Regions[lowest],
		"highest_score":           avgs[highest],
		"lowest_score":            avgs[lowest],
		"total_samples_processed": totalSamples,
	})
}

func (s *Server) handleResources(c echo.Context) error {
	regionParam := queryDefault(c, "region", "all")
	year, err := queryYear(c)
	if err != nil {
		return err
	}

	var targets []string
	if regionParam == "all" {
		targets = domain.Regions
	} else {
		for _, r := range strings.Split(regionParam, ",") {
			if r = strings.TrimSpace(r); domain.KnownRegion(r) {
				targets = append(targets, r)
			}
		}
	}

	ctx := c.Request().Context()

	results := make([]*domain.PipelineResult, 0, len(targets))
	for _, r := range targets {
		result, err := s.cache.Get(ctx, r, year)
		if err != nil {
			return apperrors.InternalError("pipeline run failed", err).WithContext("region", r)
		}
		results = append(results, result)
	}

	rows := advisor.Recommend(results)

	totalBudget, totalCounselors := 0, 0
	for _, row := range rows {
		totalBudget += row.BudgetAllocationPct
		totalCounselors += row.RecommendedCounselors
	}

	return c.JSON(200, map[string]any{
		"year":                       year,
		"resources":                  rows,
		"total_budget_pct_allocated": totalBudget,
		"total_counselors_needed":    totalCounselors,
	})
}

func queryDefault(c echo.Context, name, fallback string) string {
	if v := c.QueryParam(name); v != "" {
		return v
	}
	return fallback
}

func queryYear(c echo.Context) (int, error) {
	raw := c.QueryParam("year")
	if raw == "" {
		return defaultYear, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 {
		return 0, apperrors.ValidationError("year must be a positive integer").WithContext("year", raw)
	}
	return year, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
