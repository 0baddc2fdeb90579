package catalog

// categoriesV1 is the v1 risk category set. Weights sum to exactly 1.0;
// catalog_test.go guards the invariant.
var categoriesV1 = []RiskCategory{
	{
		Id:           "data_protection",
		Name:         "Data Protection",
		Definition:   "How sensitive data (PII, PHI, financial records) is classified, stored and protected across its lifecycle.",
		ScoringFocus: "classification inventory encryption retention masking anonymization",
		Weight:       0.08,
	},
	{
		Id:           "access_control",
		Name:         "Access Control",
		Definition:   "How access to critical systems and data is granted, reviewed and revoked.",
		ScoringFocus: "mfa least privilege rbac review provisioning identity sso",
		Weight:       0.07,
	},
	{
		Id:           "compliance",
		Name:         "Regulatory Compliance",
		Definition:   "Alignment with the regulatory standards that apply to the business (GDPR, HIPAA, PCI-DSS, sector rules).",
		ScoringFocus: "gdpr hipaa pci-dss audit certification framework regulation",
		Weight:       0.07,
	},
	{
		Id:           "ai_governance",
		Name:         "AI Governance",
		Definition:   "Oversight of AI and machine learning systems: model risk, bias, explainability and acceptable use.",
		ScoringFocus: "model governance bias explainability oversight policy acceptable",
		Weight:       0.06,
	},
	{
		Id:           "cloud_security",
		Name:         "Cloud Security",
		Definition:   "Security posture of cloud workloads, shared-responsibility awareness and configuration management.",
		ScoringFocus: "cloud configuration posture iam baseline hardening misconfiguration",
		Weight:       0.06,
	},
	{
		Id:           "third_party",
		Name:         "Third-Party Risk",
		Definition:   "Risk introduced through vendors, SaaS platforms and cloud providers handling company data.",
		ScoringFocus: "vendor assessment contract saas due diligence questionnaire",
		Weight:       0.06,
	},
	{
		Id:           "incident_response",
		Name:         "Incident Response",
		Definition:   "Ability to detect, contain and recover from security incidents.",
		ScoringFocus: "playbook tabletop drill detection containment recovery escalation",
		Weight:       0.06,
	},
	{
		Id:           "iot_security",
		Name:         "IoT Security",
		Definition:   "Security of connected devices and operational technology on the network.",
		ScoringFocus: "device firmware segmentation inventory patching certificate",
		Weight:       0.05,
	},
	{
		Id:           "network_security",
		Name:         "Network Security",
		Definition:   "Perimeter and internal network defenses, segmentation and monitoring.",
		ScoringFocus: "firewall segmentation ids ips monitoring zero trust vpn",
		Weight:       0.05,
	},
	{
		Id:           "encryption",
		Name:         "Encryption Practices",
		Definition:   "Use of encryption for data at rest and in transit, including key management.",
		ScoringFocus: "aes tls key management rotation hsm certificate at rest transit",
		Weight:       0.05,
	},
	{
		Id:           "security_maturity",
		Name:         "Security Maturity",
		Definition:   "Overall maturity of the security program against a recognized maturity model.",
		ScoringFocus: "maturity managed optimizing defined roadmap program ciso",
		Weight:       0.05,
	},
	{
		Id:           "training",
		Name:         "Security Awareness & Training",
		Definition:   "Frequency and depth of security and compliance training across the workforce.",
		ScoringFocus: "training awareness phishing simulation onboarding refresher",
		Weight:       0.05,
	},
	{
		Id:           "supply_chain",
		Name:         "Supply Chain Security",
		Definition:   "Assessment and monitoring of software and hardware supply chain dependencies.",
		ScoringFocus: "sbom dependency provenance signing monitoring supplier",
		Weight:       0.05,
	},
	{
		Id:           "vulnerability_mgmt",
		Name:         "Vulnerability Management",
		Definition:   "Discovery, prioritization and remediation of vulnerabilities across the estate.",
		ScoringFocus: "scanning patching remediation sla pentest cve prioritization",
		Weight:       0.04,
	},
	{
		Id:           "business_continuity",
		Name:         "Business Continuity",
		Definition:   "Resilience planning: backups, disaster recovery and continuity testing.",
		ScoringFocus: "backup restore rpo rto disaster recovery failover testing",
		Weight:       0.04,
	},
	{
		Id:           "insider_threat",
		Name:         "Insider Threat",
		Definition:   "Controls against malicious or negligent insiders, including monitoring and offboarding.",
		ScoringFocus: "monitoring dlp offboarding separation duties background",
		Weight:       0.04,
	},
	{
		Id:           "physical_security",
		Name:         "Physical Security",
		Definition:   "Physical protection of facilities, hardware and media.",
		ScoringFocus: "badge cctv datacenter visitor disposal media",
		Weight:       0.03,
	},
	{
		Id:           "quantum_readiness",
		Name:         "Quantum Readiness",
		Definition:   "Preparedness for post-quantum cryptography migration and harvest-now-decrypt-later exposure.",
		ScoringFocus: "post-quantum pqc crypto agility migration inventory nist",
		Weight:       0.03,
	},
	{
		Id:           "blockchain_risk",
		Name:         "Blockchain & Smart Contract Risk",
		Definition:   "Risk from distributed-ledger deployments, custody of keys and smart contract flaws.",
		ScoringFocus: "wallet custody smart contract audit ledger key",
		Weight:       0.03,
	},
	{
		Id:           "automation_risk",
		Name:         "Automation & RPA Risk",
		Definition:   "Risk from robotic process automation and unattended workflows acting with elevated privileges.",
		ScoringFocus: "rpa bot credential vault approval workflow audit trail",
		Weight:       0.03,
	},
}
