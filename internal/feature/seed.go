package feature

import (
	"time"
	
	"github.com/katatrina/feature-dashboard/internal/util"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedTimeline returns the development items shown on the timeline and dashboard.
func SeedTimeline() []TimelineItem {
	return []TimelineItem{
		{
			ID:          39,
			Title:       "Authorization Service Integration",
			Status:      TimelineStatusInProgress,
			Date:        date(2021, time.November, 3),
			Description: "Enable authorization management through separate service for better integration with customer applications",
			Milestone:   true,
			Reference:   "CSUSE0007907",
			Priority:    3,
			Arguments:   "This is a prerequisite for utilizing Datahub possibilities in the consumer segment. Current authorization process needs improvement to be more efficient.",
			Impact:      "Authorization service would function similar to current authentication services or payment services, where users move from one website to another to complete necessary actions.",
		},
		{
			ID:             80,
			Title:          "Customer Level Authorization",
			Status:         TimelineStatusPending,
			Date:           date(2022, time.June, 9),
			Description:    "Implement light customer-specific authorization to retrieve accounting points with minimum data",
			Reference:      "CSUSE0070711",
			Priority:       2,
			Arguments:      "Customer might have many accounting points (e.g. 100) and the amount may vary. Third parties lack visibility to notice missing accounting points, leading to incomplete service coverage.",
			Impact:         "Simplifies authorization process for large customers with multiple accounting points, reducing workload for all parties.",
			Recommendation: "Proposal supported to proceed. Particularly important for large customers where managing multiple accounting point authorizations is challenging and time-consuming.",
		},
		{
			ID:          377,
			Title:       "Third Party Authorization in Customer Portal",
			Status:      TimelineStatusInProgress,
			Date:        date(2024, time.January, 24),
			Description: "Streamline the authorization process for third-party applications through customer portal",
			Milestone:   true,
			Reference:   "CSUSE0069362",
			Priority:    2,
			Arguments:   "Current process requires customers to log into multiple systems to complete authorization process.",
			Impact:      "Improves customer experience by allowing all steps to be completed in one system.",
		},
		{
			ID:          381,
			Title:       "Bulk Authorization Management",
			Status:      TimelineStatusPending,
			Date:        date(2024, time.February, 8),
			Description: "Enable authorization for multiple accounting points simultaneously",
			Reference:   "CSUSE0070176",
			Priority:    2,
			Arguments:   "Currently authorizations must be done one accounting point at a time, making the process time-consuming for customers with multiple points.",
			Impact:      "Significantly reduces time and effort required for managing multiple authorizations.",
		},
		{
			ID:          376,
			Title:       "Authorization Restoration Process",
			Status:      TimelineStatusInProgress,
			Date:        date(2024, time.February, 22),
			Description: "Restore authorizations when sales contracts are restored in DH-351 process",
			Reference:   "CSUSE0070406",
			Priority:    2,
			Arguments:   "Issue discovered as part of processing flexibility service provider authorizations.",
			Impact:      "Ensures continuous service delivery and proper authorization management during contract restorations.",
		},
		{
			ID:          388,
			Title:       "Energy Community Calculation Precision",
			Status:      TimelineStatusCompleted,
			Date:        date(2024, time.February, 29),
			Description: "Clarification of calculation precision in energy community measurements",
			Reference:   "CSUSE0068632",
			Priority:    1,
			Arguments:   "Need for precise energy community measurements to ensure accurate calculations.",
			Impact:      "Improves accuracy of energy community calculations and ensures consistent measurement standards.",
		},
		{
			ID:          390,
			Title:       "Time Series Data Control",
			Status:      TimelineStatusPending,
			Date:        date(2024, time.February, 26),
			Description: "Implementation of size limits for outbound time series messages including energy community calculations",
			Milestone:   true,
			Reference:   "CSUSE0071213",
			Priority:    1,
			Arguments:   "Current system lacks controls on time series message sizes, potentially affecting system performance.",
			Impact:      "Optimizes system performance and ensures efficient handling of time series data, particularly for energy community calculations.",
		},
		{
			ID:          336,
			Title:       "Consumer Authorization Termination Rights",
			Status:      TimelineStatusPending,
			Date:        date(2023, time.November, 6),
			Description: "Enable third parties to terminate consumer customer authorizations similar to business customer authorizations",
			Reference:   "CSUSE0070406",
			Priority:    2,
			Arguments:   "Current process does not align with EU reference model for access to meter and consumption data (05/01/2025). Third parties cannot terminate consumer authorizations.",
			Impact:      "Brings system in compliance with EU regulations and improves authorization management capabilities.",
		},
		{
			ID:          365,
			Title:       "Customer Portal Enhancement for Energy Reporting",
			Status:      TimelineStatusPending,
			Date:        date(2024, time.January, 12),
			Description: "Improve customer portal interface for adding energy reporting authorizations (AP01)",
			Reference:   "CSUSE0068715",
			Priority:    2,
			Arguments:   "Current interface allows selection of any company regardless of role, leading to incorrect authorization attempts.",
			Impact:      "Reduces incorrect authorization attempts and customer service inquiries by showing only valid authorization options.",
		},
	}
}

// SeedRequests returns the initial feature request board.
func SeedRequests() []FeatureRequest {
	requests := []FeatureRequest{
		{
			ID:            1,
			Title:         "Bulk Data Export Functionality",
			Description:   "Add ability to export multiple datasets simultaneously",
			SubmittedBy:   "User Organization A",
			SubmittedDate: date(2024, time.March, 1),
			Category:      "Data Management",
			Upvotes:       15,
			Status:        RequestStatusUnderReview,
		},
		{
			ID:            2,
			Title:         "Enhanced API Documentation",
			Description:   "Provide more detailed API documentation with practical examples",
			SubmittedBy:   "User Organization B",
			SubmittedDate: date(2024, time.February, 28),
			Category:      "Documentation",
			Upvotes:       8,
			Status:        RequestStatusNew,
		},
	}
	for i := range requests {
		requests[i].Slug = util.GenerateSlug(requests[i].Title, requests[i].ID)
	}
	
	return requests
}
