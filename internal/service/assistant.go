package service

import (
	"context"
	"fmt"
	"strings"
)

// ChildContext carries the child details woven into prompts and replies.
type ChildContext struct {
	FirstName         string
	AgeInYears        int
	AgeInMonths       int
	Gender            string
	Allergies         string
	MedicalConditions string
}

// Reply is a single assistant answer with its supporting citations.
type Reply struct {
	Content  string
	Evidence string
	Sources  []string
}

// HealthTip is one entry of the static tips catalog.
type HealthTip struct {
	Category string
	Tip      string
	AgeGroup string
}

// Responder produces assistant replies for chatbot conversations. The real
// AI backend is an external collaborator; this interface is its seam.
type Responder interface {
	Reply(ctx context.Context, message string, child *ChildContext) (*Reply, error)
	SystemPrompt(child *ChildContext) string
	HealthTips(ageInMonths *int) []HealthTip
}

// keywordResponder matches a few well-known keywords against canned,
// evidence-tagged answers. It stands in until a real model is wired up.
type keywordResponder struct{}

func NewKeywordResponder() Responder {
	return &keywordResponder{}
}

const feverReply = `For fever in children, here are some general guidelines:

• Monitor temperature regularly
• Ensure adequate hydration
• Dress in light clothing
• Consider age-appropriate fever reducers if recommended by your pediatrician
• Seek immediate medical attention if fever is very high or accompanied by concerning symptoms

Please consult your pediatrician for personalized advice, especially for children under 3 months.`

const vaccinationReply = `Vaccinations are crucial for protecting children from serious diseases.

Key points:
• Follow the recommended vaccination schedule
• Vaccines are safe and effective
• Mild side effects are normal and indicate immune system response
• Keep vaccination records updated

Please consult your pediatrician about your child's vaccination schedule.`

const fallbackReply = `Thank you for your question. As a pediatric AI assistant, I'm here to provide evidence-based health information.

For the best care for your child, I recommend:
• Consulting with your pediatrician for personalized advice
• Keeping up with regular check-ups
• Maintaining a healthy lifestyle with proper nutrition and exercise

Could you please provide more specific details about your concern so I can offer more targeted guidance?`

func (r *keywordResponder) Reply(_ context.Context, message string, _ *ChildContext) (*Reply, error) {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "fever"):
		return &Reply{
			Content:  feverReply,
			Evidence: "Fever management guidelines based on AAP recommendations",
			Sources:  []string{"American Academy of Pediatrics", "CDC Guidelines"},
		}, nil
	case strings.Contains(lower, "vaccination") || strings.Contains(lower, "vaccine"):
		return &Reply{
			Content:  vaccinationReply,
			Evidence: "Based on CDC vaccination guidelines and WHO recommendations",
			Sources:  []string{"CDC", "WHO", "American Academy of Pediatrics"},
		}, nil
	default:
		return &Reply{
			Content:  fallbackReply,
			Evidence: "General pediatric care principles",
			Sources:  []string{"American Academy of Pediatrics"},
		}, nil
	}
}

func (r *keywordResponder) SystemPrompt(child *ChildContext) string {
	var b strings.Builder

	b.WriteString(`You are Dr. FamLink, a knowledgeable and caring pediatrician AI assistant.
You provide evidence-based medical advice and health information for children and families.

Guidelines:
- Always provide evidence-based information
- Include sources when possible
- Be empathetic and understanding
- Recommend consulting healthcare professionals for serious concerns
- Focus on preventive care and healthy lifestyle advice
- Use age-appropriate recommendations`)

	if child != nil {
		b.WriteString("\n\nCurrent child context:")
		b.WriteString(fmt.Sprintf("\n- Name: %s", child.FirstName))
		b.WriteString(fmt.Sprintf("\n- Age: %d years (%d months)", child.AgeInYears, child.AgeInMonths))
		b.WriteString(fmt.Sprintf("\n- Gender: %s", child.Gender))
		if child.Allergies != "" {
			b.WriteString(fmt.Sprintf("\n- Known allergies: %s", child.Allergies))
		}
		if child.MedicalConditions != "" {
			b.WriteString(fmt.Sprintf("\n- Medical conditions: %s", child.MedicalConditions))
		}
	}

	return b.String()
}

func (r *keywordResponder) HealthTips(ageInMonths *int) []HealthTip {
	if ageInMonths == nil {
		return []HealthTip{
			{Category: "General", Tip: "Regular pediatric check-ups are essential for monitoring growth and development", AgeGroup: "All ages"},
			{Category: "General", Tip: "Keep vaccination schedules up to date", AgeGroup: "All ages"},
			{Category: "General", Tip: "Practice good hygiene habits including regular handwashing", AgeGroup: "All ages"},
		}
	}

	switch {
	case *ageInMonths < 12:
		return []HealthTip{
			{Category: "Nutrition", Tip: "Exclusive breastfeeding for first 6 months is recommended", AgeGroup: "0-12 months"},
			{Category: "Safety", Tip: "Always place baby on back to sleep", AgeGroup: "0-12 months"},
			{Category: "Development", Tip: "Tummy time helps strengthen neck and shoulder muscles", AgeGroup: "0-12 months"},
		}
	case *ageInMonths < 24:
		return []HealthTip{
			{Category: "Nutrition", Tip: "Introduce variety of foods to develop healthy eating habits", AgeGroup: "12-24 months"},
			{Category: "Safety", Tip: "Childproof your home as toddlers become more mobile", AgeGroup: "12-24 months"},
			{Category: "Development", Tip: "Read to your child daily to support language development", AgeGroup: "12-24 months"},
		}
	default:
		return []HealthTip{
			{Category: "Nutrition", Tip: "Encourage balanced meals with fruits and vegetables", AgeGroup: "2+ years"},
			{Category: "Activity", Tip: "Ensure at least 60 minutes of physical activity daily", AgeGroup: "2+ years"},
			{Category: "Sleep", Tip: "Maintain consistent bedtime routines", AgeGroup: "2+ years"},
		}
	}
}
