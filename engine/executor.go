package engine

// ============================================================================
// EXECUTOR — One full dashboard evaluation per interaction
// ============================================================================
// Pipeline:
//   1. Apply the FilterSpec → SubView (zero-copy)
//   2. Compute KPIs and grouped summaries
//   3. Build chart, table, and metric payloads per tab
//   4. Return Result
//
// Synchronous and stateless: one filter change triggers one Execute call,
// and the same spec on the same view always produces the same Result. The
// merged table is read-only throughout.
// ============================================================================

// Execute runs a FilterSpec against a client view and returns the
// render-ready dashboard payload.
//
// Zero matching rows is not an error: the Result carries an informational
// Notice and nil tab payloads, and the next interaction proceeds normally.
func Execute(spec FilterSpec, view View, opts ...Option) *Result {
	cfg := applyOptions(opts)

	filtered := Apply(view, spec)

	result := &Result{
		Matched:  filtered.Len(),
		Universe: view.Len(),
	}

	if filtered.Len() == 0 {
		result.Notice = "No client data matches the current filter selection. Adjust your filters."
		return result
	}

	kpis := ComputeKPIs(filtered)
	result.KPIs = &kpis

	result.Segmentation = &SegmentationTab{
		RelationshipGender: BuildRelationshipGenderChart(CountByRelationshipGender(filtered), cfg.Palette),
		AgeIncome:          BuildAgeIncomeScatter(filtered, cfg.Palette),
	}

	summaries := SummarizeAdvisors(filtered)
	result.Advisors = &AdvisorTab{
		AUMByAdvisor: BuildAdvisorAUMChart(summaries),
		RiskLoad:     BuildAdvisorLoadChart(summaries, cfg.Palette),
		Summaries:    summaries,
	}

	result.Assets = &AssetTab{
		Mix:      BuildAssetMixChart(SumAssetMix(filtered), cfg.Palette),
		Exposure: ComputeLoanExposure(filtered),
	}

	result.Table = BuildClientTable(filtered, cfg.TableLimit)

	return result
}
