package qgen

import "github.com/sproutedu/sprout/internal/question"

// DefaultCatalog returns the compiled-in question catalog, keyed by
// topic. It is small on purpose: enough to run demo sessions and to
// keep serving when no model provider is available.
func DefaultCatalog() map[string][]question.Question {
	return map[string][]question.Question{
		"fractions":      fractionsCatalog(),
		"multiplication": multiplicationCatalog(),
		"decimals":       decimalsCatalog(),
	}
}

func ladder(nudge, guidance, reveal string) []question.Hint {
	return []question.Hint{
		{Level: 1, Kind: question.HintNudge, Text: nudge},
		{Level: 2, Kind: question.HintGuidance, Text: guidance},
		{Level: 3, Kind: question.HintReveal, Text: reveal},
	}
}

func fractionsCatalog() []question.Question {
	return []question.Question{
		{
			ID: "fractions-01", Topic: "fractions", Subtopic: "naming-fractions",
			Type: question.TypeMultipleChoice, Difficulty: question.DifficultyBeginner,
			CognitiveLoad: question.LoadLow,
			Prompt:        "Which fraction shows one half?",
			Content: question.MultipleChoice{
				Choices:      []string{"1/2", "1/3", "2/3", "1/4"},
				CorrectIndex: 0,
			},
			Scaffolding: question.Scaffolding{
				Hints: []question.Hint{
					{Level: 1, Kind: question.HintNudge, Text: "One half means one out of two equal parts."},
					{Level: 2, Kind: question.HintGuidance, Text: "The bottom number counts the equal parts. You want two parts."},
				},
			},
			EstimatedTimeSeconds: 20, Points: 5,
		},
		{
			ID: "fractions-02", Topic: "fractions", Subtopic: "fraction-addition",
			Type: question.TypeNumeric, Difficulty: question.DifficultyEasy,
			CognitiveLoad: question.LoadMedium,
			Prompt:        "What is 1/4 + 1/4? Give your answer as a fraction in simplest form.",
			Content:       question.Numeric{Answer: 0.5},
			Scaffolding: question.Scaffolding{
				Hints: ladder(
					"The bottom numbers are already the same.",
					"When the denominators match, add only the top numbers.",
					"1 + 1 = 2, so you get 2/4. Now make it simpler.",
				),
				WorkedExample: &question.WorkedExample{
					Intro: "Let's add 1/6 + 1/6 together.",
					Steps: []string{
						"The denominators are both 6, so they stay the same.",
						"Add the numerators: 1 + 1 = 2, giving 2/6.",
						"Simplify: 2/6 = 1/3.",
					},
				},
			},
			EstimatedTimeSeconds: 40, Points: 10,
		},
		{
			ID: "fractions-03", Topic: "fractions", Subtopic: "equivalent-fractions",
			Type: question.TypeFillBlank, Difficulty: question.DifficultyMedium,
			CognitiveLoad: question.LoadMedium,
			Prompt:        "Fill in the blank: 3/4 = 9/__",
			Content:       question.FillBlank{Accepted: []string{"12"}},
			Scaffolding: question.Scaffolding{
				Hints: ladder(
					"What did 3 get multiplied by to become 9?",
					"Whatever happens to the top must happen to the bottom.",
					"3 * 3 = 9, so multiply 4 by 3 as well.",
				),
				WorkedExample: &question.WorkedExample{
					Intro: "Let's find the blank in 2/5 = 6/__.",
					Steps: []string{
						"The numerator went from 2 to 6, so it was multiplied by 3.",
						"Multiply the denominator by the same 3: 5 * 3 = 15.",
						"So 2/5 = 6/15.",
					},
				},
			},
			EstimatedTimeSeconds: 50, Points: 12,
		},
		{
			ID: "fractions-04", Topic: "fractions", Subtopic: "comparing-fractions",
			Type: question.TypeTrueFalse, Difficulty: question.DifficultyMedium,
			CognitiveLoad: question.LoadLow,
			Prompt:        "True or false: 2/3 is greater than 3/5.",
			Content:       question.TrueFalse{Answer: true},
			Scaffolding: question.Scaffolding{
				Hints: ladder(
					"Try giving both fractions the same denominator.",
					"Fifteenths work for both: rewrite 2/3 and 3/5 over 15.",
					"2/3 = 10/15 and 3/5 = 9/15. Which is bigger?",
				),
				WorkedExample: &question.WorkedExample{
					Intro: "Let's compare 1/2 and 2/5.",
					Steps: []string{
						"A common denominator for 2 and 5 is 10.",
						"1/2 = 5/10 and 2/5 = 4/10.",
						"5/10 is greater, so 1/2 is greater than 2/5.",
					},
				},
			},
			EstimatedTimeSeconds: 45, Points: 12,
		},
		{
			ID: "fractions-05", Topic: "fractions", Subtopic: "comparing-fractions",
			Type: question.TypeOrdering, Difficulty: question.DifficultyHard,
			CognitiveLoad: question.LoadHigh,
			Prompt:        "Put these fractions in order from smallest to largest.",
			Content: question.Ordering{
				Items:   []string{"1/2", "2/3", "3/8", "5/6"},
				Correct: []int{2, 0, 1, 3},
			},
			Scaffolding: question.Scaffolding{
				Hints: ladder(
					"Compare each fraction to 1/2 first.",
					"3/8 is less than 1/2. Both 2/3 and 5/6 are more. Which of those is closer to 1?",
					"5/6 is only 1/6 away from 1, while 2/3 is 1/3 away. Smallest to largest: 3/8, 1/2, 2/3, 5/6.",
				),
				WorkedExample: &question.WorkedExample{
					Intro: "Let's order 1/4, 1/2, and 2/5.",
					Steps: []string{
						"Rewrite everything over 20: 5/20, 10/20, and 8/20.",
						"Sort the numerators: 5, then 8, then 10.",
						"So the order is 1/4, 2/5, 1/2.",
					},
				},
			},
			EstimatedTimeSeconds: 90, Points: 15,
		},
		{
			ID: "fractions-06", Topic: "fractions", Subtopic: "fraction-multiplication",
			Type: question.TypeNumeric, Difficulty: question.DifficultyAdvanced,
			CognitiveLoad: question.LoadMedium,
			Prompt:        "What is 2/3 * 3/4? Give your answer as a fraction in simplest form.",
			Content:       question.Numeric{Answer: 0.5},
			Scaffolding: question.Scaffolding{
				Hints: ladder(
					"Multiply straight across: tops together, bottoms together.",
					"2 * 3 = 6 on top and 3 * 4 = 12 on the bottom.",
					"6/12 simplifies. Divide top and bottom by 6.",
				),
				WorkedExample: &question.WorkedExample{
					Intro: "Let's multiply 1/2 * 4/5.",
					Steps: []string{
						"Multiply the numerators: 1 * 4 = 4.",
						"Multiply the denominators: 2 * 5 = 10.",
						"4/10 simplifies to 2/5.",
					},
				},
			},
			EstimatedTimeSeconds: 100, Points: 20,
		},
	}
}

func multiplicationCatalog() []question.Question {
	return []question.Question{
		{
			ID: "multiplication-01", Topic: "multiplication", Subtopic: "times-tables",
			Type: question.TypeNumeric, Difficulty: question.DifficultyBeginner,
			CognitiveLoad: question.LoadLow,
			Prompt:        "What is 6 * 7?",
			Content:       question.Numeric{Answer: 42},
			Scaffolding: question.Scaffolding{
				Hints: []question.Hint{
					{Level: 1, Kind: question.HintNudge, Text: "Think of six groups of seven."},
					{Level: 2, Kind: question.HintGuidance, Text: "5 * 7 = 35, then add one more 7."},
				},
			},
			EstimatedTimeSeconds: 20, Points: 5,
		},
		{
			ID: "multiplication-02", Topic: "multiplication", Subtopic: "times-tables",
			Type: question.TypeNumeric, Difficulty: question.DifficultyEasy,
			CognitiveLoad: question.LoadLow,
			Prompt:        "What is 12 * 8?",
			Content:       question.Numeric{Answer: 96},
			Scaffolding: question.Scaffolding{
				Hints: ladder(
					"Split 12 into 10 and 2.",
					"10 * 8 = 80 and 2 * 8 = 16.",
					"Add the two parts: 80 + 16.",
				),
				WorkedExample: &question.WorkedExample{
					Intro: "Let's work out 13 * 6.",
					Steps: []string{
						"Split 13 into 10 and 3.",
						"10 * 6 = 60 and 3 * 6 = 18.",
						"60 + 18 = 78.",
					},
				},
			},
			EstimatedTimeSeconds: 35, Points: 8,
		},
		{
			ID: "multiplication-03", Topic: "multiplication", Subtopic: "equal-groups",
			Type: question.TypeMultipleChoice, Difficulty: question.DifficultyMedium,
			CognitiveLoad: question.LoadMedium,
			Prompt:        "Which number sentence matches four groups of nine?",
			Content: question.MultipleChoice{
				Choices:      []string{"4 * 9 = 36", "4 + 9 = 13", "9 - 4 = 5", "36 / 4 = 9"},
				CorrectIndex: 0,
			},
			Scaffolding: question.Scaffolding{
				Hints: ladder(
					"Groups of equal size mean multiplying.",
					"Four groups with nine in each is 4 * 9.",
					"4 * 9 = 36 is the matching sentence.",
				),
				WorkedExample: &question.WorkedExample{
					Intro: "Think about three bags with five marbles each.",
					Steps: []string{
						"Three equal groups of five is 3 * 5.",
						"3 * 5 = 15 marbles in total.",
					},
				},
			},
			EstimatedTimeSeconds: 45, Points: 10,
		},
		{
			ID: "multiplication-04", Topic: "multiplication", Subtopic: "times-tables",
			Type: question.TypeMatching, Difficulty: question.DifficultyMedium,
			CognitiveLoad: question.LoadHigh,
			Prompt:        "Match each product with its value.",
			Content: question.Matching{
				Left:  []string{"3 * 4", "5 * 5", "6 * 7", "8 * 9"},
				Right: []string{"12", "25", "42", "72"},
				Pairs: []int{0, 1, 2, 3},
			},
			Scaffolding: question.Scaffolding{
				Hints: ladder(
					"Start with the fact you know best and cross it off.",
					"3 * 4 and 5 * 5 are the friendliest. That leaves two bigger ones.",
					"6 * 7 = 42, so 8 * 9 must be 72.",
				),
				WorkedExample: &question.WorkedExample{
					Intro: "Matching 2 * 3 and 4 * 5 with 6 and 20.",
					Steps: []string{
						"2 * 3 = 6, so it pairs with 6.",
						"4 * 5 = 20, so it pairs with 20.",
					},
				},
			},
			EstimatedTimeSeconds: 60, Points: 12,
		},
		{
			ID: "multiplication-05", Topic: "multiplication", Subtopic: "word-problems",
			Type: question.TypeNumeric, Difficulty: question.DifficultyHard,
			CognitiveLoad: question.LoadMedium,
			Prompt:        "A box holds 24 crayons. How many crayons are in 7 boxes?",
			Content:       question.Numeric{Answer: 168},
			Scaffolding: question.Scaffolding{
				Hints: ladder(
					"Seven boxes of the same size means multiplying.",
					"Work out 24 * 7 by splitting 24 into 20 and 4.",
					"20 * 7 = 140 and 4 * 7 = 28. Add them.",
				),
				WorkedExample: &question.WorkedExample{
					Intro: "A pack holds 16 pencils. How many pencils in 5 packs?",
					Steps: []string{
						"Five equal packs means 16 * 5.",
						"10 * 5 = 50 and 6 * 5 = 30.",
						"50 + 30 = 80 pencils.",
					},
				},
			},
			EstimatedTimeSeconds: 75, Points: 15,
		},
		{
			ID: "multiplication-06", Topic: "multiplication", Subtopic: "times-tables",
			Type: question.TypeMultipleSelect, Difficulty: question.DifficultyAdvanced,
			CognitiveLoad: question.LoadHigh,
			Prompt:        "Select every expression equal to 36.",
			Content: question.MultipleSelect{
				Choices:        []string{"6 * 6", "4 * 9", "3 * 13", "2 * 18"},
				CorrectIndices: []int{0, 1, 3},
			},
			Scaffolding: question.Scaffolding{
				Hints: ladder(
					"Work each product out one at a time.",
					"6 * 6 and 4 * 9 both give 36. Check the last two carefully.",
					"3 * 13 = 39, not 36. 2 * 18 = 36.",
				),
				WorkedExample: &question.WorkedExample{
					Intro: "Which of 2 * 12, 3 * 8, and 5 * 5 equal 24?",
					Steps: []string{
						"2 * 12 = 24 and 3 * 8 = 24.",
						"5 * 5 = 25, so it does not belong.",
					},
				},
			},
			EstimatedTimeSeconds: 110, Points: 22,
		},
	}
}

func decimalsCatalog() []question.Question {
	return []question.Question{
		{
			ID: "decimals-01", Topic: "decimals", Subtopic: "place-value",
			Type: question.TypeMultipleChoice, Difficulty: question.DifficultyBeginner,
			CognitiveLoad: question.LoadLow,
			Prompt:        "Which number is three tenths?",
			Content: question.MultipleChoice{
				Choices:      []string{"0.3", "3.0", "0.03", "30"},
				CorrectIndex: 0,
			},
			Scaffolding: question.Scaffolding{
				Hints: ladder(
					"Tenths live in the first place after the decimal point.",
					"Three tenths means 3 in the tenths place and 0 ones.",
					"That is 0.3.",
				),
				WorkedExample: &question.WorkedExample{
					Intro: "What does seven tenths look like?",
					Steps: []string{
						"Seven tenths is 7 in the first place after the point.",
						"So seven tenths is written 0.7.",
					},
				},
			},
			EstimatedTimeSeconds: 25, Points: 5,
		},
		{
			ID: "decimals-02", Topic: "decimals", Subtopic: "decimal-addition",
			Type: question.TypeNumeric, Difficulty: question.DifficultyEasy,
			CognitiveLoad: question.LoadLow,
			Prompt:        "What is 0.5 + 0.25?",
			Content:       question.Numeric{Answer: 0.75},
			Scaffolding: question.Scaffolding{
				Hints: ladder(
					"Line up the decimal points before adding.",
					"Write 0.5 as 0.50 so both numbers have two decimal places.",
					"0.50 + 0.25 adds like 50 + 25 hundredths.",
				),
				WorkedExample: &question.WorkedExample{
					Intro: "Let's add 0.4 + 0.35.",
					Steps: []string{
						"Rewrite 0.4 as 0.40.",
						"Add hundredths: 40 + 35 = 75.",
						"The answer is 0.75.",
					},
				},
			},
			EstimatedTimeSeconds: 35, Points: 8,
		},
		{
			ID: "decimals-03", Topic: "decimals", Subtopic: "fraction-decimal",
			Type: question.TypeShortAnswer, Difficulty: question.DifficultyMedium,
			CognitiveLoad: question.LoadMedium,
			Prompt:        "Write 7/10 as a decimal.",
			Content:       question.ShortAnswer{Accepted: []string{"0.7", ".7"}},
			Scaffolding: question.Scaffolding{
				Hints: ladder(
					"Tenths go right after the decimal point.",
					"7/10 means seven tenths.",
					"Seven tenths is written 0.7.",
				),
				WorkedExample: &question.WorkedExample{
					Intro: "Write 3/10 as a decimal.",
					Steps: []string{
						"3/10 is three tenths.",
						"Three tenths is 0.3.",
					},
				},
			},
			EstimatedTimeSeconds: 40, Points: 10,
		},
		{
			ID: "decimals-04", Topic: "decimals", Subtopic: "comparing-decimals",
			Type: question.TypeTrueFalse, Difficulty: question.DifficultyHard,
			CognitiveLoad: question.LoadLow,
			Prompt:        "True or false: 0.09 is greater than 0.1.",
			Content:       question.TrueFalse{Answer: false},
			Scaffolding: question.Scaffolding{
				Hints: ladder(
					"Compare the tenths place first.",
					"0.09 has 0 tenths; 0.1 has 1 tenth.",
					"One tenth beats nine hundredths, so the statement is false.",
				),
				WorkedExample: &question.WorkedExample{
					Intro: "Compare 0.2 and 0.15.",
					Steps: []string{
						"0.2 has 2 tenths; 0.15 has only 1 tenth.",
						"So 0.2 is greater than 0.15.",
					},
				},
			},
			EstimatedTimeSeconds: 50, Points: 15,
		},
		{
			ID: "decimals-05", Topic: "decimals", Subtopic: "decimal-multiplication",
			Type: question.TypeNumeric, Difficulty: question.DifficultyAdvanced,
			CognitiveLoad: question.LoadMedium,
			Prompt:        "What is 1.2 * 0.5?",
			Content:       question.Numeric{Answer: 0.6},
			Scaffolding: question.Scaffolding{
				Hints: ladder(
					"Multiplying by 0.5 is the same as taking half.",
					"Half of 1.2 splits into half of 1 plus half of 0.2.",
					"0.5 + 0.1 = 0.6.",
				),
				WorkedExample: &question.WorkedExample{
					Intro: "Let's multiply 2.4 * 0.5.",
					Steps: []string{
						"Multiplying by 0.5 halves the number.",
						"Half of 2.4 is 1.2.",
					},
				},
			},
			EstimatedTimeSeconds: 90, Points: 20,
		},
	}
}
