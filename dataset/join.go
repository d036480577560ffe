package dataset

// ============================================================================
// JOIN ENGINE — Three left joins against the dimension lookups
// ============================================================================
// Each join keys against the result of the prior join, on a single equi-key:
//   1. relationship id → Banking Relationship
//   2. gender id       → Gender
//   3. advisor id      → Investment Advisor
// A lookup maps each key to at most one label, so the output row count
// always equals the input row count. Unmatched keys get the default label
// for their dimension instead of dropping the row.
// ============================================================================

// Join returns a new slice with the three dimension labels resolved.
func Join(clients []Client, src *Sources) []Client {
	joined := joinLabel(clients, src.Relationships, UnknownRelationship,
		func(c Client) string { return c.RelationshipID },
		func(c *Client, label string) { c.Relationship = label },
	)
	joined = joinLabel(joined, src.Genders, UnspecifiedGender,
		func(c Client) string { return c.GenderID },
		func(c *Client, label string) { c.Gender = label },
	)
	joined = joinLabel(joined, src.Advisors, UnassignedAdvisor,
		func(c Client) string { return c.AdvisorID },
		func(c *Client, label string) { c.Advisor = label },
	)
	return joined
}

// joinLabel performs one left join: resolves key(c) against the lookup and
// assigns either the matched label or fallback. Produces a new slice.
func joinLabel(clients []Client, lookup Lookup, fallback string, key func(Client) string, assign func(*Client, string)) []Client {
	out := make([]Client, len(clients))
	for i, c := range clients {
		label, ok := lookup[key(c)]
		if !ok || label == "" {
			label = fallback
		}
		assign(&c, label)
		out[i] = c
	}
	return out
}
