package constant

import "it-helpdesk-be/internal/entity"

// KnowledgeBase is the fixed demo corpus. Order matters: the lexical
// scorer breaks score ties by position in this slice.
var KnowledgeBase = []entity.KnowledgeArticle{
	{
		Id:       "KB001",
		Title:    "Windows Blue Screen of Death (BSOD) Troubleshooting",
		Category: "Windows",
		Content:  "Blue Screen of Death errors indicate critical system failures. Common causes include driver issues, hardware problems, and corrupted system files. Solutions: 1) Boot in Safe Mode 2) Update or rollback drivers 3) Run memory diagnostic 4) Check hard drive health 5) Restore system to previous working state. For IRQL_NOT_LESS_OR_EQUAL errors, focus on driver updates.",
		Tags:     []string{"BSOD", "Windows", "Drivers", "Hardware", "Critical"},
	},
	{
		Id:       "KB002",
		Title:    "Mac System Won't Boot - Startup Issues",
		Category: "Mac",
		Content:  "Mac startup problems can be caused by corrupted system files, hardware failures, or software conflicts. Troubleshooting steps: 1) Reset NVRAM/PRAM (Cmd+Option+P+R) 2) Boot in Safe Mode (hold Shift) 3) Run Disk Utility from Recovery Mode 4) Reinstall macOS if necessary 5) Check hardware connections. For spinning wheel issues, often disk-related.",
		Tags:     []string{"Mac", "Startup", "Boot", "NVRAM", "Recovery"},
	},
	{
		Id:       "KB003",
		Title:    "Network Connectivity Issues Resolution",
		Category: "Network",
		Content:  "Network connectivity problems affect productivity. Systematic approach: 1) Check physical connections 2) Restart network adapter 3) Flush DNS cache (ipconfig /flushdns) 4) Reset network stack 5) Update network drivers 6) Check firewall settings 7) Contact ISP if external. For intermittent issues, check for interference.",
		Tags:     []string{"Network", "Connectivity", "DNS", "Firewall", "Drivers"},
	},
	{
		Id:       "KB004",
		Title:    "Printer Not Responding - Universal Fix Guide",
		Category: "Hardware",
		Content:  "Printer issues are common in office environments. Resolution steps: 1) Check power and cable connections 2) Clear print queue 3) Restart print spooler service 4) Update printer drivers 5) Run printer troubleshooter 6) Check ink/toner levels 7) Clean print heads. For network printers, verify IP configuration.",
		Tags:     []string{"Printer", "Hardware", "Drivers", "Spooler", "Network"},
	},
	{
		Id:       "KB005",
		Title:    "Email Client Configuration and Troubleshooting",
		Category: "Email",
		Content:  "Email setup and issues resolution for Outlook and other clients. Common problems: 1) Incorrect server settings (IMAP/POP3/SMTP) 2) Authentication failures 3) SSL/TLS configuration 4) Firewall blocking ports 5) Corrupted profile. Solutions include recreating profiles, checking server settings, and verifying credentials.",
		Tags:     []string{"Email", "Outlook", "IMAP", "SMTP", "Configuration"},
	},
	{
		Id:       "KB006",
		Title:    "Slow Computer Performance Optimization",
		Category: "Performance",
		Content:  "System slowdown affects user productivity. Optimization steps: 1) Check resource usage in Task Manager 2) Disable startup programs 3) Run disk cleanup 4) Defragment hard drive 5) Scan for malware 6) Update drivers 7) Add more RAM if needed 8) Clean temporary files. Monitor CPU and memory usage patterns.",
		Tags:     []string{"Performance", "Optimization", "Memory", "CPU", "Cleanup"},
	},
}
