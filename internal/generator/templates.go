package generator

// Anonymized response templates, ten per sentiment bucket. No real
// identifiers appear in any of them.

var positiveTemplates = []string{
	"Feeling much more connected to my community lately and finding support when needed.",
	"The local counseling services have been incredibly helpful for managing daily stress.",
	"Noticed significant improvement in work-life balance after joining a peer support group.",
	"Mental health resources in this area have made a real difference in my well-being.",
	"Feeling hopeful and supported by friends and family through recent challenges.",
	"Access to telehealth therapy has been a game-changer for managing anxiety.",
	"Community wellness programs have provided excellent coping strategies.",
	"Regular mindfulness sessions at the community center have reduced my stress levels.",
	"The support network here is strong; people look out for each other.",
	"Grateful for the mental health awareness initiatives that helped me seek help early.",
}

var neutralTemplates = []string{
	"Mental health awareness has improved but access to care remains inconsistent.",
	"Some days are harder than others; trying to maintain a balanced routine.",
	"The wait times for counseling services are long but the quality is acceptable.",
	"Workplace stress is manageable with occasional support from HR programs.",
	"Community support exists but awareness about mental health services could be better.",
	"Navigating mental health resources is complicated but getting easier over time.",
	"Local programs are available but participation rates seem low.",
	"Stress levels fluctuate with seasonal changes and work demands.",
	"Insurance coverage for mental health treatment is improving but gaps remain.",
	"Peer support groups are helpful though not always available when needed.",
}

var negativeTemplates = []string{
	"Feeling overwhelmed by work pressures and struggling to find adequate support.",
	"Mental health services in this region are severely underfunded and hard to access.",
	"Long waiting lists for therapy have left many people without timely support.",
	"Social isolation has worsened significantly affecting daily functioning.",
	"The stigma around seeking mental health help remains a major barrier in this community.",
	"Cost of mental health care is prohibitive for many residents in this area.",
	"Experiencing persistent anxiety and depression with limited access to professionals.",
	"Community mental health centers are overcrowded and understaffed.",
	"Recent job losses have significantly impacted the mental well-being of residents.",
	"Lack of culturally competent mental health services is a growing concern.",
}
