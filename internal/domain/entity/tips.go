package entity

import "math/rand"

// Tip returns a random tip from the kind's pool.
func (k CollectibleKind) Tip(rng *rand.Rand) string {
	tips := k.Attrs().Tips
	if len(tips) == 0 {
		tips = genericTips
	}
	return tips[rng.Intn(len(tips))]
}

var genericTips = []string{
	"TIP: Every security measure you take makes you a harder target for cyber threats!",
}

var firewallTips = []string{
	"TIP: A firewall is your network's first line of defense, monitoring all traffic.",
	"TIP: Using both hardware and software firewalls provides robust, layered security.",
	"TIP: Regularly review your firewall rules to remove outdated or unnecessary permissions.",
	"TIP: A personal firewall protects your device even when connected to untrusted public networks.",
}

var antivirusTips = []string{
	"TIP: Keep your antivirus software updated to defend against the very latest malware threats.",
	"TIP: Schedule regular full system scans with your antivirus, ideally once a week.",
	"TIP: Never disable your antivirus protection, even temporarily. An attack takes only seconds.",
	"TIP: Enable real-time protection in your antivirus settings for continuous security monitoring.",
}

var encryptionTips = []string{
	"TIP: Encryption scrambles data, making it unreadable to anyone without the correct key.",
	"TIP: Look for 'HTTPS' in your browser's address bar to ensure your connection is encrypted.",
	"TIP: Use full-disk encryption (like BitLocker or FileVault) to protect data if your device is stolen.",
	"TIP: End-to-end encryption in messaging apps means only you and the recipient can read the messages.",
}

var passwordTips = []string{
	"TIP: Enable Two-Factor Authentication (2FA) on all important accounts for a major security boost.",
	"TIP: Use a unique, complex password for every single account. Never reuse passwords!",
	"TIP: A strong password is long (12+ characters) and mixes cases, numbers, and symbols.",
	"TIP: Use a reputable password manager to securely store and generate strong, unique passwords.",
}

var vpnTips = []string{
	"TIP: A VPN encrypts your internet connection, protecting your data on public Wi-Fi.",
	"TIP: A 'no-logs' VPN provider doesn't store records of your online activity, enhancing privacy.",
	"TIP: A VPN's 'kill switch' feature blocks internet access if the VPN disconnects, preventing data leaks.",
	"TIP: A VPN hides your IP address, making it harder for websites and services to track you online.",
}

var backupTips = []string{
	"TIP: Follow the 3-2-1 rule: 3 data copies, on 2 different media types, with 1 copy off-site.",
	"TIP: Regular backups are your best defense against data loss from ransomware or hardware failure.",
	"TIP: Test your backups periodically to ensure you can actually restore your files when needed.",
	"TIP: Encrypting your backups is as important as encrypting the original data.",
}

var masterKeyTips = []string{
	"TIP: Your password manager's master password is the key to your digital life. Make it strong and memorable.",
	"TIP: Store your 2FA recovery codes in a safe, offline location, like a safe or a secure note.",
	"TIP: A physical security key (like a YubiKey) provides one of the strongest forms of account protection.",
	"TIP: Your primary email account is often a master key to other accounts. Secure it with 2FA!",
}

var quantumTips = []string{
	"TIP: Quantum Key Distribution (QKD) uses quantum physics to create theoretically unhackable keys.",
	"TIP: Any attempt to intercept a quantum key exchange alters it, immediately alerting the users.",
	"TIP: Quantum-resistant algorithms are being developed to secure today's data from future quantum computers.",
	"TIP: This next-gen encryption will be vital for protecting highly sensitive, long-term data.",
}

var neuralTips = []string{
	"TIP: AI-powered antivirus detects new threats by analyzing suspicious behavior, not just known code.",
	"TIP: By learning what's 'normal' for your system, a neural antivirus can spot anomalies that signal an attack.",
	"TIP: This adaptive defense gets smarter over time as it analyzes more data and threats.",
	"TIP: Neural networks can identify and block zero-day attacks that traditional antivirus might miss.",
}

var blockchainTips = []string{
	"TIP: A decentralized VPN (dVPN) has no central point of failure or control, increasing censorship resistance.",
	"TIP: By routing traffic through a distributed network of nodes, a dVPN enhances user anonymity.",
	"TIP: With no central server, there is no single entity that can be forced to log user data.",
	"TIP: This technology represents a shift towards user-controlled, privacy-focused internet tools.",
}

var aiBackupTips = []string{
	"TIP: AI-driven backups can intelligently prioritize critical files and optimize schedules.",
	"TIP: Smart backup systems can scan files for malware infection *before* they are backed up.",
	"TIP: AI can predict potential drive failures, prompting you to back up data before it's lost.",
	"TIP: By analyzing file versions, AI can help identify the exact point a ransomware attack occurred.",
}
