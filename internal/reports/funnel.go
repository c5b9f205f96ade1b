package reports

// FunnelStep defines one stage of the fixed conversion funnel: the event
// names that qualify a user, optionally narrowed to a specific page.
type FunnelStep struct {
	Name   string
	Events []string
	Page   string // optional properties.page filter
}

// FunnelSteps is the fixed 5-stage conversion sequence.
var FunnelSteps = []FunnelStep{
	{Name: "Visited Website", Events: []string{"page_view"}},
	{Name: "Viewed Product/Pricing", Events: []string{"page_view"}, Page: "/pricing"},
	{Name: "Started Signup", Events: []string{"signup_started", "form_submit"}},
	{Name: "Completed Signup", Events: []string{"signup_completed", "user_registered"}},
	{Name: "Made Purchase", Events: []string{"purchase", "purchase_completed"}},
}

// BuildFunnel turns per-step distinct-user counts into funnel stages. The
// first step is always 100%; later steps are relative to it, 1 decimal,
// and 0 when the first step had no users.
func BuildFunnel(steps []FunnelStep, counts []int) []FunnelStage {
	stages := make([]FunnelStage, 0, len(steps))
	for i, step := range steps {
		users := 0
		if i < len(counts) {
			users = counts[i]
		}
		pct := 0.0
		switch {
		case i == 0:
			pct = 100
		case len(counts) > 0 && counts[0] > 0:
			pct = Round1(float64(users) / float64(counts[0]) * 100)
		}
		stages = append(stages, FunnelStage{Step: step.Name, Users: users, Percentage: pct})
	}
	return stages
}
