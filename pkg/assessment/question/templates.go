package question

// questionTemplates holds the phrasing for each catalog category. A single
// %s, when present, receives the lowercased industry.
var questionTemplates = map[string]string{
	"data_protection":     "What types of sensitive data does your %s business store or process, and how is that data classified and protected?",
	"access_control":      "How is access to critical systems and data managed across your organization?",
	"compliance":          "What regulatory standards apply to your %s business, and how do you demonstrate compliance with them?",
	"ai_governance":       "What oversight exists for AI or machine learning systems in use or planned, including model risk and acceptable-use policies?",
	"cloud_security":      "How do you secure your cloud workloads and verify their configuration against a hardening baseline?",
	"third_party":         "What third-party vendors, SaaS platforms or cloud providers do you rely on, and how are they assessed?",
	"incident_response":   "Do you have an incident response plan, and how often is it exercised?",
	"iot_security":        "What connected devices or operational technology run on your network, and how are they inventoried and patched?",
	"network_security":    "How is your network segmented and monitored for intrusions?",
	"encryption":          "How is sensitive data currently encrypted at rest and in transit, and how are keys managed?",
	"security_maturity":   "How would you describe your cybersecurity maturity? (Initial, Developing, Defined, Managed, Optimizing)",
	"training":            "What security and compliance training do employees receive, and how often?",
	"supply_chain":        "How do you assess and monitor risks in your software and hardware supply chain?",
	"vulnerability_mgmt":  "How are vulnerabilities discovered, prioritized and remediated across your estate?",
	"business_continuity": "What backup, disaster recovery and continuity arrangements are in place, and when were they last tested?",
	"insider_threat":      "What controls limit the damage a malicious or negligent insider could cause?",
	"physical_security":   "How are your facilities, hardware and storage media physically protected?",
	"quantum_readiness":   "Have you inventoried cryptography that would need replacing for post-quantum migration?",
	"blockchain_risk":     "If you operate blockchain or smart-contract systems, how are keys held and contracts audited?",
	"automation_risk":     "What approval and audit controls govern robotic process automation or unattended workflows?",
}

var helperTexts = map[string]string{
	"data_protection":     "Specify all types of sensitive data, e.g., patient health info, credit cards, and the protections applied to each.",
	"access_control":      "Describe your access control policies, MFA, least privilege, access reviews, etc.",
	"compliance":          "List all compliance frameworks or regulations that your business must follow.",
	"ai_governance":       "Describe any AI/ML systems in use or planned and the policies governing them.",
	"cloud_security":      "Name the cloud providers in use and how configurations are checked (CSPM, benchmarks, audits).",
	"third_party":         "List all major third-party services, e.g., AWS, Azure, Salesforce, and how they are vetted.",
	"incident_response":   "Describe your incident response process, on-call arrangements and testing frequency.",
	"iot_security":        "Describe device inventory, firmware update processes and network segmentation for devices.",
	"network_security":    "Describe firewalls, segmentation, IDS/IPS and monitoring coverage.",
	"encryption":          "Describe encryption methods, e.g., AES-256, TLS 1.2+, and key management practices.",
	"security_maturity":   "Use a standard maturity model or describe your current state.",
	"training":            "Describe frequency and content of employee training, including phishing simulations.",
	"supply_chain":        "Describe your process for evaluating and monitoring suppliers and dependencies (SBOMs, signing).",
	"vulnerability_mgmt":  "Describe scanning cadence, patch SLAs and penetration testing.",
	"business_continuity": "Describe backup schedules, recovery objectives (RPO/RTO) and the last restore test.",
	"insider_threat":      "Describe monitoring, data loss prevention, separation of duties and offboarding.",
	"physical_security":   "Describe badge access, visitor handling, CCTV and secure media disposal.",
	"quantum_readiness":   "Describe any crypto inventory or migration planning toward post-quantum algorithms.",
	"blockchain_risk":     "Describe key custody, wallet controls and smart-contract audit practices, or state not applicable.",
	"automation_risk":     "Describe bot credentials handling, approval workflows and audit trails, or state not applicable.",
}
