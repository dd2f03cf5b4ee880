package cloud

// Distributor 是生成候选位置的策略接口
type Distributor interface {
	// 会话中第一个矩形放在中心后调用，分布器据此初始化自身状态。
	Seed(first Rect)

	// 返回尺寸为 size 的矩形的候选左上角。
	// 连续调用得到的位置到中心的距离不减。
	Position(size Size) Point

	// candidate 与已提交的 blocker 相交时，返回 candidate 的新左上角。
	Resolve(candidate, blocker Rect) Point

	// 标识为 id 的矩形已无相交地放置，每个矩形恰好调用一次。
	Commit(id int)

	// 返回当前状态，供可视化按圆环着色。
	State() State
}

// State 是分布器当前状态的快照。
type State struct {
	// Strategy 是生成位置的策略。
	Strategy Strategy `json:"strategy"`
	// Radius 是当前圆环或螺线的半径。
	Radius int `json:"radius"`
	// Ring 是当前圆环的序号，从 0 开始。
	Ring int `json:"ring"`
	// Sector 是当前正在填充的扇区，仅对 SectorRings 有意义。
	Sector Sector `json:"sector"`
	// Angle 是螺线当前的角度（度），仅对 AngularSpiral 有意义。
	Angle int `json:"angle,omitempty"`
}
