package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"learnsafe/internal/models"
)

// SubjectReport is one subject row in a supervisor report.
type SubjectReport struct {
	Subject     string `json:"subject"`
	Level       int    `json:"level"`
	Progress    int    `json:"progress"`
	AIAssisted  int    `json:"aiAssisted"`
	SelfReliant int    `json:"selfReliant"`
}

// SupervisorReport is the read-only progress snapshot shown to
// supervisors and used for the emailed report.
type SupervisorReport struct {
	Name          string          `json:"name"`
	Grade         string          `json:"grade"`
	TotalPoints   int             `json:"totalPoints"`
	EnergyPoints  int             `json:"energyPoints"`
	CurrentStreak int             `json:"currentStreak"`
	TimeRemaining int             `json:"timeRemainingMinutes"`
	Subjects      []SubjectReport `json:"subjects"`
}

// BuildSupervisorReport assembles the snapshot from a profile.
func BuildSupervisorReport(profile *models.UserProfile) *SupervisorReport {
	report := &SupervisorReport{
		Name:          profile.Name,
		Grade:         profile.Grade,
		TotalPoints:   profile.TotalPoints,
		EnergyPoints:  profile.EnergyPoints,
		CurrentStreak: profile.CurrentStreak,
		TimeRemaining: profile.TimeRemaining(),
	}
	subjects := make([]string, 0, len(profile.Subjects))
	for subject := range profile.Subjects {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	for _, subject := range subjects {
		mastery := profile.Subjects[subject]
		report.Subjects = append(report.Subjects, SubjectReport{
			Subject:     subject,
			Level:       mastery.Level,
			Progress:    mastery.Progress,
			AIAssisted:  mastery.AIAssisted,
			SelfReliant: mastery.SelfReliant,
		})
	}
	return report
}

// ReportService emails progress reports to supervisors via Amazon SES.
type ReportService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	enabled   bool
	debug     bool
}

// NewReportService creates a new report service. An empty fromEmail
// creates a disabled service that logs and skips every send.
func NewReportService(awsRegion, fromEmail, fromName string, debug bool) (*ReportService, error) {
	if fromEmail == "" {
		log.Println("Report email disabled: SES_FROM_EMAIL not configured")
		return &ReportService{enabled: false, debug: debug}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(cfg)
	log.Printf("Report email enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &ReportService{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
		debug:     debug,
	}, nil
}

// IsEnabled returns whether report emails can be sent.
func (s *ReportService) IsEnabled() bool {
	return s.enabled
}

// SendProgressReport emails the supervisor a progress summary.
func (s *ReportService) SendProgressReport(ctx context.Context, toEmail string, report *SupervisorReport) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): progress report to %s", toEmail)
		return nil
	}

	subject := fmt.Sprintf("LearnSafe progress report for %s", report.Name)

	var subjectRows strings.Builder
	var subjectLines strings.Builder
	for _, s := range report.Subjects {
		subjectRows.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%d</td><td>%d%%</td></tr>\n",
			s.Subject, s.Level, s.Progress))
		subjectLines.WriteString(fmt.Sprintf("- %s: level %d, %d%% progress\n",
			s.Subject, s.Level, s.Progress))
	}
	if len(report.Subjects) == 0 {
		subjectRows.WriteString("<tr><td colspan=\"3\">No subject activity yet</td></tr>\n")
		subjectLines.WriteString("No subject activity yet\n")
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #4a90e2; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		table { width: 100%%; border-collapse: collapse; }
		td, th { padding: 6px; border-bottom: 1px solid #ddd; text-align: left; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>Progress Report</h1>
		</div>
		<div class="content">
			<p>%s (Grade %s)</p>
			<ul>
				<li>Total points: %d</li>
				<li>Energy: %d/100</li>
				<li>Current streak: %d days</li>
				<li>Time remaining today: %d minutes</li>
			</ul>
			<table>
				<tr><th>Subject</th><th>Level</th><th>Progress</th></tr>
				%s
			</table>
		</div>
		<div class="footer">
			<p>This is an automated email from LearnSafe. Please do not reply.</p>
		</div>
	</div>
</body>
</html>
`, report.Name, report.Grade, report.TotalPoints, report.EnergyPoints,
		report.CurrentStreak, report.TimeRemaining, subjectRows.String())

	textBody := fmt.Sprintf(`Progress report for %s (Grade %s)

Total points: %d
Energy: %d/100
Current streak: %d days
Time remaining today: %d minutes

Subjects:
%s
---
This is an automated email from LearnSafe. Please do not reply.
`, report.Name, report.Grade, report.TotalPoints, report.EnergyPoints,
		report.CurrentStreak, report.TimeRemaining, subjectLines.String())

	if s.debug {
		log.Printf("[DEBUG] Sending progress report: subject=%s, to=%s", subject, toEmail)
	}

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *ReportService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if s.debug && result.MessageId != nil {
		log.Printf("[DEBUG] Email sent, message id: %s", *result.MessageId)
	}
	return nil
}
