package catalog

// Built-in questionnaire content. A deployment can replace all of this with
// a YAML catalog file; the built-in data is what the consumer app ships.

func defaultQuestions() []Question {
	return []Question{
		// Basics — intake only, never scored.
		{
			ID:          "name",
			Text:        "First things first — what should we call you?",
			Type:        TypeText,
			Pillar:      PillarBasics,
			Placeholder: "Your first name",
		},
		{
			ID:          "dob",
			Text:        "Which year were you born?",
			Type:        TypeNumber,
			Pillar:      PillarBasics,
			Placeholder: "e.g. 1999",
		},
		{
			ID:          "location",
			Text:        "Where are you based?",
			Type:        TypeText,
			Pillar:      PillarBasics,
			Placeholder: "City or country",
			Optional:    true,
		},

		// Career
		{
			ID:     "career_situation",
			Text:   "Which best describes your current work situation?",
			Type:   TypeMultipleChoice,
			Pillar: PillarCareer,
			Options: []string{
				"Employed",
				"Self-Employed/Freelancer",
				"Student",
				"Between jobs",
				"Homemaker/Caregiver",
			},
		},
		{
			ID:           "career_fulfillment",
			Text:         "How fulfilled do you feel by your work right now?",
			Type:         TypeSlider,
			Pillar:       PillarCareer,
			SliderLabels: &SliderLabels{Min: "Running on empty", Max: "Completely fulfilled"},
		},
		{
			ID:          "career_hours",
			Text:        "Roughly how many hours do you work in a typical week?",
			Type:        TypeNumber,
			Pillar:      PillarCareer,
			Placeholder: "e.g. 40",
		},
		{
			ID:          "career_goal",
			Text:        "What's one career goal you'd love to achieve in the next year?",
			Type:        TypeText,
			Pillar:      PillarCareer,
			Placeholder: "In your own words",
		},
		{
			ID:          "career_challenge_follow_up",
			Text:        "What's the biggest challenge of working for yourself right now?",
			Type:        TypeText,
			Pillar:      PillarCareer,
			Placeholder: "Cash flow, finding clients, switching off...",
		},

		// Finances
		{
			ID:     "financial_situation",
			Text:   "Which best describes your financial situation?",
			Type:   TypeMultipleChoice,
			Pillar: PillarFinances,
			Options: []string{
				"Living paycheque to paycheque",
				"Comfortable, but not saving",
				"Saving consistently",
				"Investing and growing wealth",
			},
		},
		{
			ID:     "financial_reason_follow_up",
			Text:   "What's the main thing keeping you there?",
			Type:   TypeMultipleChoice,
			Pillar: PillarFinances,
			Options: []string{
				"Income doesn't cover much beyond essentials",
				"Debt repayments",
				"Spending habits",
				"Supporting others",
				"Something else",
			},
		},
		{
			ID:           "financial_confidence",
			Text:         "How confident do you feel managing your money?",
			Type:         TypeSlider,
			Pillar:       PillarFinances,
			SliderLabels: &SliderLabels{Min: "Not at all", Max: "Totally in control"},
		},
		{
			ID:     "financial_savings_percentage",
			Text:   "What percentage of your income do you manage to save?",
			Type:   TypeMultipleChoice,
			Pillar: PillarFinances,
			Options: []string{
				"0%",
				"Less than 5%",
				"5-10%",
				"10-20%",
				"More than 20%",
			},
		},
		{
			ID:          "financial_goal",
			Text:        "What's one financial milestone you're working towards?",
			Type:        TypeText,
			Pillar:      PillarFinances,
			Placeholder: "e.g. Save for a home deposit",
		},

		// Health
		{
			ID:           "health_activity",
			Text:         "How many days a week are you physically active?",
			Type:         TypeSlider,
			Pillar:       PillarHealth,
			SliderLabels: &SliderLabels{Min: "0 days", Max: "7 days"},
		},
		{
			ID:     "health_barrier_follow_up",
			Text:   "What's the biggest thing getting in the way of moving more?",
			Type:   TypeMultipleChoice,
			Pillar: PillarHealth,
			Options: []string{
				"Not enough time",
				"Low energy or motivation",
				"Injury or physical limitation",
				"Don't know where to start",
			},
		},
		{
			ID:           "health_energy_levels",
			Text:         "How are your energy levels on a typical day?",
			Type:         TypeSlider,
			Pillar:       PillarHealth,
			SliderLabels: &SliderLabels{Min: "Drained", Max: "Fully charged"},
		},
		{
			ID:          "health_sleep",
			Text:        "How many hours of sleep do you usually get?",
			Type:        TypeNumber,
			Pillar:      PillarHealth,
			Placeholder: "e.g. 7",
		},
		{
			ID:          "health_goal",
			Text:        "What's one health goal that matters to you right now?",
			Type:        TypeText,
			Pillar:      PillarHealth,
			Placeholder: "e.g. Build strength and improve fitness",
		},

		// Connections
		{
			ID:           "connections_belonging",
			Text:         "How strong is your sense of belonging with the people around you?",
			Type:         TypeSlider,
			Pillar:       PillarConnections,
			SliderLabels: &SliderLabels{Min: "Pretty isolated", Max: "Deeply connected"},
		},
		{
			ID:     "connections_priority_follow_up",
			Text:   "Is building deeper connections something you want to prioritise?",
			Type:   TypeMultipleChoice,
			Pillar: PillarConnections,
			Options: []string{
				"Yes, it's a focus",
				"Somewhat",
				"Not right now",
			},
		},
		{
			ID:     "connections_quality_time",
			Text:   "How much quality time do you spend with people you care about each week?",
			Type:   TypeMultipleChoice,
			Pillar: PillarConnections,
			Options: []string{
				"Less than 2 hours",
				"2-5 hours",
				"5-10 hours",
				"10+ hours",
			},
		},
		{
			ID:     "connections_investment",
			Text:   "Which relationships do you most want to invest in?",
			Type:   TypeMultiSelect,
			Pillar: PillarConnections,
			Options: []string{
				"Family",
				"Friendships",
				"Romantic relationship",
				"Community",
			},
		},
		{
			ID:          "connections_goal",
			Text:        "What's one thing you'd like to change about your social life?",
			Type:        TypeText,
			Pillar:      PillarConnections,
			Placeholder: "e.g. Deepen existing friendships",
		},
	}
}

func defaultTriggerRules() []TriggerRule {
	return []TriggerRule{
		{
			TriggerID:  "career_situation",
			FollowUpID: "career_challenge_follow_up",
			Op:         OpEq,
			Value:      "Self-Employed/Freelancer",
		},
		{
			TriggerID:  "financial_situation",
			FollowUpID: "financial_reason_follow_up",
			Op:         OpEq,
			Value:      "Living paycheque to paycheque",
		},
		{
			TriggerID:  "health_activity",
			FollowUpID: "health_barrier_follow_up",
			Op:         OpLte,
			Threshold:  1,
		},
		{
			TriggerID:  "connections_belonging",
			FollowUpID: "connections_priority_follow_up",
			Op:         OpLt,
			Threshold:  5,
		},
	}
}

func defaultFutureQuestions() []FutureQuestions {
	return []FutureQuestions{
		{
			Pillar: PillarCareer,
			DeepDive: []string{
				"In 5 years, what does 'success' in your career look like in one sentence?",
				"What one new skill or qualification would make the biggest difference in getting there?",
				"Describe your ideal work-life balance. What does a perfect week look like?",
			},
			Maintenance: "To support your other life goals, what does a 'good enough' career look like? What is the absolute minimum you need from your work?",
		},
		{
			Pillar: PillarFinances,
			DeepDive: []string{
				"What financial milestone in 5 years would make you feel truly secure?",
				"To achieve this, what's the biggest change you're willing to make to your spending or earning habits?",
				"Beyond security, what's one big-ticket item or experience you'd love to be able to afford, guilt-free?",
			},
			Maintenance: "What does 'not having to worry about money' mean to you on a practical level? What is the minimum financial baseline you need to feel secure enough to pursue your main goals?",
		},
		{
			Pillar: PillarHealth,
			DeepDive: []string{
				"Picture yourself in 5 years. How do you want to feel physically and mentally on a typical day?",
				"What is the single most important health habit you want to become second nature?",
				"What physical achievement, big or small, would you be most proud of?",
			},
			Maintenance: "What is the non-negotiable, minimum level of health and energy you need to function well and chase your primary ambitions? What is one habit you must maintain?",
		},
		{
			Pillar: PillarConnections,
			DeepDive: []string{
				"In 5 years, what kind of social life genuinely energises you?",
				"What kind of person do you aspire to be for the most important people in your life?",
				"Is there a specific relationship (personal or professional) you want to invest in building or repairing over the next 5 years?",
			},
			Maintenance: "To feel supported, what is the minimum level of social connection you need? What does that look like on a weekly or monthly basis?",
		},
	}
}

func defaultPulseCheckCards() []PulseCheckCard {
	return []PulseCheckCard{
		{ID: 1, Category: PillarCareer, Tone: "negative", Text: "I'm grinding hard... but like, is this even the right ladder?"},
		{ID: 2, Category: PillarCareer, Tone: "negative", Text: "I'm busy 24/7 but low-key forgot why I started."},
		{ID: 3, Category: PillarCareer, Tone: "negative", Text: "People think I've got leadership vibes. I'm just winging it."},
		{ID: 4, Category: PillarCareer, Tone: "negative", Text: "I keep saying I want freedom, then choose stability every time."},
		{ID: 5, Category: PillarCareer, Tone: "negative", Text: "Planning? 10/10. Actually doing it? Still buffering."},
		{ID: 6, Category: PillarCareer, Tone: "positive", Text: "I'm building something that actually feels like me."},
		{ID: 7, Category: PillarCareer, Tone: "positive", Text: "I'm not just busy — I'm intentional now."},
		{ID: 8, Category: PillarCareer, Tone: "positive", Text: "I'm finally leading in a way that feels natural."},
		{ID: 9, Category: PillarCareer, Tone: "positive", Text: "I've made choices that trade comfort for growth — and I'm good with that."},
		{ID: 10, Category: PillarCareer, Tone: "positive", Text: "I used to overthink. Now I just start."},

		{ID: 11, Category: PillarFinances, Tone: "negative", Text: "I make more now, but money still stresses me out."},
		{ID: 12, Category: PillarFinances, Tone: "negative", Text: "Sometimes I spend just to feel a little in control."},
		{ID: 13, Category: PillarFinances, Tone: "negative", Text: "I'm saving, but honestly... for what, exactly?"},
		{ID: 14, Category: PillarFinances, Tone: "negative", Text: "I wanna invest, but the fear of messing up is real."},
		{ID: 15, Category: PillarFinances, Tone: "negative", Text: "Why does 'enough' always feel one paycheck away?"},
		{ID: 16, Category: PillarFinances, Tone: "positive", Text: "I actually feel calm when I check my bank account."},
		{ID: 17, Category: PillarFinances, Tone: "positive", Text: "I spend on things that genuinely make life better."},
		{ID: 18, Category: PillarFinances, Tone: "positive", Text: "My savings have a purpose — and that feels good."},
		{ID: 19, Category: PillarFinances, Tone: "positive", Text: "Investing doesn't scare me anymore — I feel in the game."},
		{ID: 20, Category: PillarFinances, Tone: "positive", Text: "I'm defining what 'enough' means for me, not everyone else."},

		{ID: 21, Category: PillarHealth, Tone: "negative", Text: "Caffeine is my coping mechanism and personality trait."},
		{ID: 22, Category: PillarHealth, Tone: "negative", Text: "I sleep, but waking up tired is my brand."},
		{ID: 23, Category: PillarHealth, Tone: "negative", Text: "I'll focus on my health... once I survive this week."},
		{ID: 24, Category: PillarHealth, Tone: "negative", Text: "I know what's good for me. I just... don't do it."},
		{ID: 25, Category: PillarHealth, Tone: "negative", Text: "I treat rest like a luxury item, not a necessity."},
		{ID: 26, Category: PillarHealth, Tone: "positive", Text: "I have energy — and it's not just from coffee."},
		{ID: 27, Category: PillarHealth, Tone: "positive", Text: "Sleep is my new superpower."},
		{ID: 28, Category: PillarHealth, Tone: "positive", Text: "I've made space for health without guilt-tripping myself."},
		{ID: 29, Category: PillarHealth, Tone: "positive", Text: "I follow through — even when no one's watching."},
		{ID: 30, Category: PillarHealth, Tone: "positive", Text: "Rest is part of the plan, not a backup option."},

		{ID: 31, Category: PillarConnections, Tone: "negative", Text: "I've got people around, but still feel kinda solo."},
		{ID: 32, Category: PillarConnections, Tone: "negative", Text: "I'm great at showing up—for everyone but me."},
		{ID: 33, Category: PillarConnections, Tone: "negative", Text: "I want deep convos, but vulnerability? Yikes."},
		{ID: 34, Category: PillarConnections, Tone: "negative", Text: "I miss my people. I just never hit send."},
		{ID: 35, Category: PillarConnections, Tone: "negative", Text: "I'm always there for others, but do they really see me?"},
		{ID: 36, Category: PillarConnections, Tone: "positive", Text: "I feel seen by the people I care about."},
		{ID: 37, Category: PillarConnections, Tone: "positive", Text: "I've been showing up for me too."},
		{ID: 38, Category: PillarConnections, Tone: "positive", Text: "I let people in — and it's actually been great."},
		{ID: 39, Category: PillarConnections, Tone: "positive", Text: "I've been reaching out more — and it feels easy."},
		{ID: 40, Category: PillarConnections, Tone: "positive", Text: "I'm surrounded by people who really get me."},
	}
}
