package service

import "math/rand/v2"

const trendingPerCategory = 3

// trendingTopics is the rotating suggestion pool, three of which are shown
// per category on each fetch.
var trendingTopics = map[string][]string{
	"Tech": {
		"AI and Machine Learning Trends 2025", "Web Development Best Practices",
		"Cloud Computing Security", "Cybersecurity for Startups",
		"Python vs JavaScript Comparison", "DevOps Pipeline Optimization",
		"Blockchain Technology Explained", "Quantum Computing Basics",
		"IoT and Edge Computing", "API Design Patterns",
	},
	"Beauty": {
		"Skincare Routine for Beginners", "Natural Beauty Products Guide",
		"Makeup Tips for Sensitive Skin", "Anti-Aging Secrets from Experts",
		"Hair Care Tips for Healthy Hair", "Cruelty-Free Cosmetics Review",
		"Wellness and Beauty Connection", "K-Beauty Trends 2025",
		"Sustainable Beauty Products", "DIY Face Masks",
	},
	"Education": {
		"Online Learning Effectiveness", "Study Techniques That Work",
		"Educational Apps Review", "Teaching Methods for Digital Age",
		"Student Productivity Hacks", "Online Courses Worth Taking",
		"Critical Thinking Development", "STEM Education Trends",
		"Language Learning Tips", "Educational Technology",
	},
	"Gaming": {
		"Top Gaming Trends 2025", "Best PC Games of the Year",
		"Gaming Setups Guide", "Esports Career Opportunities",
		"Indie Game Reviews", "Mobile Gaming Tips", "VR Gaming Experience",
		"Gaming Streaming Guide", "Game Development Basics",
		"Gaming Console Comparison",
	},
	"Health": {
		"Fitness Goals Achievement Guide", "Mental Health Awareness",
		"Nutrition and Diet Tips", "Workout Routines at Home",
		"Sleep Quality Improvement", "Stress Management Techniques",
		"Preventive Health Measures", "Yoga Benefits", "Meditation Guide",
		"Holistic Health Approach",
	},
	"Travel": {
		"Budget Travel Tips", "Hidden Gems Destinations",
		"Travel Packing Guide", "Best Time to Travel",
		"Travel Safety Essentials", "Adventure Travel Planning",
		"Cultural Experience Guide", "Solo Travel Stories",
		"Travel Photography Tips", "Digital Nomad Guide",
	},
	"Lifestyle": {
		"Minimalist Living Guide", "Work-Life Balance Tips",
		"Daily Habits for Success", "Personal Growth Strategies",
		"Home Organization Ideas", "Sustainable Living Tips",
		"Time Management Mastery", "Productivity Hacks",
		"Morning Routine Benefits", "Digital Detox Guide",
	},
	"Business": {
		"Startup Business Ideas", "Entrepreneurship Guide",
		"Marketing Strategies 2025", "Leadership Skills Development",
		"Financial Management Tips", "Business Automation",
		"Remote Work Best Practices", "Scaling a Business",
		"Customer Retention", "Business Analytics",
	},
}

// TrendingService serves rotating topic suggestions grouped by category.
type TrendingService struct{}

// NewTrendingService creates a TrendingService.
func NewTrendingService() *TrendingService {
	return &TrendingService{}
}

// Topics returns a random sample of suggestions per category.
func (s *TrendingService) Topics() map[string][]string {
	result := make(map[string][]string, len(trendingTopics))
	for category, topics := range trendingTopics {
		result[category] = sampleTopics(topics, trendingPerCategory)
	}
	return result
}

func sampleTopics(topics []string, n int) []string {
	if n > len(topics) {
		n = len(topics)
	}
	indexes := rand.Perm(len(topics))[:n]
	picked := make([]string, 0, n)
	for _, idx := range indexes {
		picked = append(picked, topics[idx])
	}
	return picked
}
