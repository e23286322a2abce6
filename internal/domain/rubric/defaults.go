package rubric

// DefaultItems is the stock demo-excellence checklist: five series with
// {17, 12, 9, 9, 16} items, matching the fixed import layout.
func DefaultItems() []Item {
	return []Item{
		// S1: Foundation (20 base points)
		{ID: "s1-1", Category: "S1: Foundation | Professional Image", Task: "Grooming", MaxPoints: 1},
		{ID: "s1-2", Category: "S1: Foundation | Professional Image", Task: "Smell", MaxPoints: 1},
		{ID: "s1-3", Category: "S1: Foundation | Professional Image", Task: "Hair", MaxPoints: 2},
		{ID: "s1-4", Category: "S1: Foundation | Professional Image", Task: "Nails", MaxPoints: 1},
		{ID: "s1-5", Category: "S1: Foundation | Professional Image", Task: "Uniform", MaxPoints: 2},
		{ID: "s1-6", Category: "S1: Foundation | Professional Image", Task: "Appropriate Accessories", MaxPoints: 1},
		{ID: "s1-7", Category: "S1: Foundation | Professional Image", Task: "Self-introduce to Shopper", MaxPoints: 1},
		{ID: "s1-8", Category: "S1: Foundation | Professional Image", Task: "Welcome shoppers, greetings", MaxPoints: 1},
		{ID: "s1-9", Category: "S1: Foundation | Professional Image", Task: "Engaging the shopper", MaxPoints: 2},
		{ID: "s1-10", Category: "S1: Foundation | Retail Excellence", Task: "Observe: Store Cleanliness", MaxPoints: 1},
		{ID: "s1-11", Category: "S1: Foundation | Retail Excellence", Task: "Observe: Retail machine display", MaxPoints: 1},
		{ID: "s1-12", Category: "S1: Foundation | Retail Excellence", Task: "Observe: Retail tools & accessories", MaxPoints: 1},
		{ID: "s1-13", Category: "S1: Foundation | Retail Excellence", Task: "Observe: Debris readiness", MaxPoints: 1},
		{ID: "s1-14", Category: "S1: Foundation | Retail Excellence", Task: "Demo: Machine/Tools organization", MaxPoints: 1},
		{ID: "s1-15", Category: "S1: Foundation | Retail Excellence", Task: "Reset: Store cleanliness", MaxPoints: 1},
		{ID: "s1-16", Category: "S1: Foundation | Retail Excellence", Task: "Reset: Retail machine reset", MaxPoints: 1},
		{ID: "s1-17", Category: "S1: Foundation | Retail Excellence", Task: "Reset: Retail tools & accessories", MaxPoints: 1},

		// S2: Engage (20 base points)
		{ID: "s2-1", Category: "S2: Engage | Building Rapport", Task: "Customer observations: Giving compliments", MaxPoints: 1},
		{ID: "s2-2", Category: "S2: Engage | Confidence", Task: "Body language: Store behaviour", MaxPoints: 1},
		{ID: "s2-3", Category: "S2: Engage | Confidence", Task: "Body language: Arms & feet", MaxPoints: 1},
		{ID: "s2-4", Category: "S2: Engage | Confidence", Task: "Body posture: Stage blocking", MaxPoints: 1},
		{ID: "s2-5", Category: "S2: Engage | Confidence", Task: "Body posture: Confidence & enthusiasm", MaxPoints: 2},
		{ID: "s2-6", Category: "S2: Engage | Confidence", Task: "Facial expression: Appropriate facial expression", MaxPoints: 1},
		{ID: "s2-7", Category: "S2: Engage | Confidence", Task: "Facial expression: Appropriate eye contact", MaxPoints: 1},
		{ID: "s2-8", Category: "S2: Engage | Confidence", Task: "Versatility with different shopper types", MaxPoints: 4},
		{ID: "s2-9", Category: "S2: Engage | Confidence", Task: "Voice expression: volume and tone", MaxPoints: 1},
		{ID: "s2-10", Category: "S2: Engage | Confidence", Task: "Voice expression: vocal delivery", MaxPoints: 1},
		{ID: "s2-11", Category: "S2: Engage | Questioning Skills", Task: "Elicit questioning (e.g. How big is your home?)", MaxPoints: 4},
		{ID: "s2-12", Category: "S2: Engage | Questioning Skills", Task: "Elaboration questions (open ended questions)", MaxPoints: 2},

		// S3: Excite (20 base points plus bonus)
		{ID: "s3-1", Category: "S3: Excite | Reflecting Skills", Task: "Paraphrasing", MaxPoints: 4},
		{ID: "s3-2", Category: "S3: Excite | Demo Initiation", Task: "Demo Initiation", MaxPoints: 2},
		{ID: "s3-3", Category: "S3: Excite | Demo Initiation", Task: "Demo plinth usage", MaxPoints: 1},
		{ID: "s3-4", Category: "S3: Excite | Demo Skills", Task: "Product Demo 1: Technique", MaxPoints: 5},
		{ID: "s3-5", Category: "S3: Excite | Demo Skills", Task: "Product Demo 2: Technique", MaxPoints: 5},
		{ID: "s3-6", Category: "S3: Excite | Bonus Metrics", Task: "Bonus: One more demo", MaxPoints: 5, Bonus: true},
		{ID: "s3-7", Category: "S3: Excite | Bonus Metrics", Task: "Bonus: Explain difference with competitor products", MaxPoints: 1, Bonus: true},
		{ID: "s3-8", Category: "S3: Excite | Maintenance", Task: "Ease of maintenance (2,1,0)", MaxPoints: 2},
		{ID: "s3-9", Category: "S3: Excite | Maintenance", Task: "Companion app walkthrough (1,0)", MaxPoints: 1},

		// S4: Explain (20 base points plus bonus)
		{ID: "s4-1", Category: "S4: Explain | Storytelling skills", Task: "Narrative: Captivating story", MaxPoints: 2},
		{ID: "s4-2", Category: "S4: Explain | Storytelling skills", Task: "Talk about Social media (Bonus)", MaxPoints: 1, Bonus: true},
		{ID: "s4-3", Category: "S4: Explain | Storytelling skills", Task: "Relate and interact with the Shopper", MaxPoints: 2},
		{ID: "s4-4", Category: "S4: Explain | Storytelling skills", Task: "Share personal stories and build connections", MaxPoints: 2},
		{ID: "s4-5", Category: "S4: Explain | Storytelling skills", Task: "Rediscovery: Layman terms to explain technology", MaxPoints: 6},
		{ID: "s4-6", Category: "S4: Explain | Storytelling skills", Task: "Eagerness to relate story to Shopper", MaxPoints: 2},
		{ID: "s4-7", Category: "S4: Explain | Active listening skills", Task: "Attentiveness", MaxPoints: 2},
		{ID: "s4-8", Category: "S4: Explain | Active listening skills", Task: "Listening", MaxPoints: 2},
		{ID: "s4-9", Category: "S4: Explain | Active listening skills", Task: "Acknowledgement", MaxPoints: 2},

		// S5: Execute (20 base points plus bonus)
		{ID: "s5-1", Category: "S5: Execute | Negotiation Skills", Task: "Counter objection: Displays confidence", MaxPoints: 2},
		{ID: "s5-2", Category: "S5: Execute | Negotiation Skills", Task: "Counter objection: Offer alternative solutions", MaxPoints: 3},
		{ID: "s5-3", Category: "S5: Execute | Negotiation Skills", Task: "Positivity: Demonstrate positivity", MaxPoints: 4},
		{ID: "s5-4", Category: "S5: Execute | Negotiation Skills", Task: "Convincing: Demonstration ability to relate", MaxPoints: 3},
		{ID: "s5-5", Category: "S5: Execute | Negotiation Skills", Task: "Sales initiation: Confidence & creativity", MaxPoints: 2},
		{ID: "s5-6", Category: "S5: Execute | Negotiation Skills", Task: "Attempt to upsell", MaxPoints: 1},
		{ID: "s5-7", Category: "S5: Execute | Negotiation Skills", Task: "Cross category initiation", MaxPoints: 1},
		{ID: "s5-8", Category: "S5: Execute | Negotiation Skills", Task: "Warranty and after-sales service", MaxPoints: 2},
		{ID: "s5-9", Category: "S5: Execute | Negotiation Skills", Task: "Shopper downloads app (Bonus)", MaxPoints: 1, Bonus: true},

		// S5 follow-up, columns 66-72 of the import layout
		{ID: "s5-10", Category: "S5: Execute | Follow-up: Purchase", Task: "Initiate Warranty Registration", MaxPoints: 1},
		{ID: "s5-11", Category: "S5: Execute | Follow-up: Purchase", Task: "Invitation to revisit - Look for me or my colleagues", MaxPoints: 0.5},
		{ID: "s5-12", Category: "S5: Execute | Follow-up: Purchase", Task: "Personalize Service", MaxPoints: 0.5},
		{ID: "s5-13", Category: "S5: Execute | Follow-up: Purchase", Task: "Offer assistance to Shopper (Bonus)", MaxPoints: 1, Bonus: true},
		{ID: "s5-14", Category: "S5: Execute | Follow-up: Non-purchase", Task: "Future prospecting", MaxPoints: 1},
		{ID: "s5-15", Category: "S5: Execute | Follow-up: Non-purchase", Task: "Successful data collection (Bonus)", MaxPoints: 1, Bonus: true},
		{ID: "s5-16", Category: "S5: Execute | Follow-up: Non-purchase", Task: "Invitation to revisit", MaxPoints: 1},
	}
}

// Default returns the stock rubric. It always validates against
// DefaultLayout.
func Default() *Rubric {
	r, err := New(DefaultItems())
	if err != nil {
		// The stock checklist is a compile-time constant; this cannot happen.
		panic(err)
	}
	return r
}
